package audio

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

func writeClipFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("clip"), 0o644))
	}
	return dir
}

func TestProcessLoader_Resolve(t *testing.T) {
	dir := writeClipFiles(t, "number_one.wav", "number_one.mp3", "family_father.mp3")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "color_red.mp3"), 0o755))

	testCases := []struct {
		name    string
		handle  string
		want    string
		wantErr error
	}{
		{
			name:   "first extension wins",
			handle: "number_one",
			want:   filepath.Join(dir, "number_one.mp3"),
		},
		{
			name:   "falls back to the next extension",
			handle: "family_father",
			want:   filepath.Join(dir, "family_father.mp3"),
		},
		{
			name:    "missing file",
			handle:  "number_two",
			wantErr: ErrClipNotFound,
		},
		{
			name:    "directories are ignored",
			handle:  "color_red",
			wantErr: ErrClipNotFound,
		},
		{
			name:    "handle outside the clip directory",
			handle:  "../number_one",
			wantErr: vocabulary.ErrInvalidClipHandle,
		},
	}

	loader := NewProcessLoader(dir, []string{"mp3", "wav"}, []string{"sh"})
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := loader.Resolve(tc.handle)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProcessLoader_Load(t *testing.T) {
	dir := writeClipFiles(t, "number_one.mp3")

	t.Run("missing clip", func(t *testing.T) {
		_, err := NewProcessLoader(dir, []string{"mp3"}, []string{"sh"}).Load("number_two")
		assert.ErrorIs(t, err, ErrClipNotFound)
	})

	t.Run("missing player", func(t *testing.T) {
		_, err := NewProcessLoader(dir, []string{"mp3"}, []string{"miwok-player-that-does-not-exist"}).Load("number_one")
		assert.Error(t, err)
	})

	t.Run("default command", func(t *testing.T) {
		loader := NewProcessLoader(dir, []string{"mp3"}, nil)
		assert.Equal(t, DefaultPlayerCommand, loader.command)
	})
}

// newShellClip plays a clip by running the script with sh; the clip path is passed as $1.
func newShellClip(t *testing.T, script string) *processClip {
	t.Helper()
	dir := writeClipFiles(t, "number_one.mp3")
	clip, err := NewProcessLoader(dir, []string{"mp3"}, []string{"sh", "-c", script, "sh"}).Load("number_one")
	require.NoError(t, err)
	return clip.(*processClip)
}

func TestProcessClip_Completion(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr string
	}{
		{
			name:   "player exits cleanly",
			script: `test -f "$1"`,
		},
		{
			name:    "player exits with an error",
			script:  "exit 3",
			wantErr: "cmd.Wait(sh) > exit status 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := newShellClip(t, tt.script)
			results := make(chan error, 1)
			clip.OnCompletion(func(err error) {
				results <- err
			})

			require.NoError(t, clip.Start())
			select {
			case err := <-results:
				if tt.wantErr != "" {
					assert.EqualError(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("completion was not reported")
			}
			assert.False(t, clip.playing())
			assert.NoError(t, clip.Release())
		})
	}
}

func TestProcessClip_PauseAndRestart(t *testing.T) {
	clip := newShellClip(t, "sleep 0.2")
	var completed atomic.Int32
	clip.OnCompletion(func(error) {
		completed.Add(1)
	})

	require.NoError(t, clip.Start())
	require.NoError(t, clip.Pause())
	require.NoError(t, clip.SeekToStart())
	assert.False(t, clip.playing())

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, completed.Load(), "a paused clip must not report completion")

	require.NoError(t, clip.Start())
	assert.True(t, clip.playing())
	require.Eventually(t, func() bool {
		return completed.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.NoError(t, clip.Release())
}

func TestProcessClip_Release(t *testing.T) {
	clip := newShellClip(t, "sleep 5")
	var completed atomic.Int32
	clip.OnCompletion(func(error) {
		completed.Add(1)
	})
	require.NoError(t, clip.Start())

	released := make(chan error, 1)
	go func() {
		released <- clip.Release()
	}()
	select {
	case err := <-released:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Release waited for the player to exit")
	}

	assert.NoError(t, clip.Release())
	assert.ErrorIs(t, clip.Start(), ErrClipReleased)
	assert.ErrorIs(t, clip.SeekToStart(), ErrClipReleased)
	assert.NoError(t, clip.Pause())

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, completed.Load())
}
