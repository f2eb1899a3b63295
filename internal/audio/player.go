package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/at-ishikawa/miwok/internal/playback"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

var (
	ErrClipNotFound = errors.New("clip file not found")
	ErrClipReleased = errors.New("clip is already released")
)

// DefaultPlayerCommand plays a file with ffplay without opening a window.
var DefaultPlayerCommand = []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"}

// ProcessLoader loads clips from a directory and plays them with an external command.
// The clip path is appended to the command's arguments.
type ProcessLoader struct {
	directory  string
	extensions []string
	command    []string
	logger     *slog.Logger
}

func NewProcessLoader(directory string, extensions []string, command []string) *ProcessLoader {
	if len(command) == 0 {
		command = DefaultPlayerCommand
	}
	return &ProcessLoader{
		directory:  directory,
		extensions: extensions,
		command:    command,
		logger:     slog.Default(),
	}
}

// Resolve returns the path of the first existing file for the handle.
func (l *ProcessLoader) Resolve(handle string) (string, error) {
	if err := vocabulary.ValidateClipHandle(handle); err != nil {
		return "", err
	}
	for _, extension := range l.extensions {
		path := filepath.Join(l.directory, handle+"."+extension)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s (extensions: %v)", ErrClipNotFound, handle, l.directory, l.extensions)
}

// Load implements playback.ClipLoader. Nothing is spawned until Start.
func (l *ProcessLoader) Load(handle string) (playback.Clip, error) {
	path, err := l.Resolve(handle)
	if err != nil {
		return nil, err
	}
	if _, err := exec.LookPath(l.command[0]); err != nil {
		return nil, fmt.Errorf("exec.LookPath(%s) > %w", l.command[0], err)
	}
	return &processClip{
		path:    path,
		command: l.command,
		logger:  l.logger,
	}, nil
}

// processClip plays a clip file in a child process.
//
// A process cannot be resumed in the middle of a clip, so Pause stops the process
// and the next Start always plays from the beginning.
type processClip struct {
	path    string
	command []string
	logger  *slog.Logger

	mu         sync.Mutex
	cmd        *exec.Cmd
	generation int
	released   bool
	onComplete func(err error)
}

func (c *processClip) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return ErrClipReleased
	}
	if c.cmd != nil {
		return nil
	}

	args := append(append([]string{}, c.command[1:]...), c.path)
	cmd := exec.Command(c.command[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start(%s) > %w", c.command[0], err)
	}
	c.cmd = cmd
	c.generation++
	go c.wait(cmd, c.generation)
	return nil
}

func (c *processClip) wait(cmd *exec.Cmd, generation int) {
	err := cmd.Wait()

	c.mu.Lock()
	current := c.generation == generation && !c.released
	if current {
		c.cmd = nil
	}
	onComplete := c.onComplete
	c.mu.Unlock()

	if !current {
		return
	}
	if err != nil {
		c.logger.Warn("player exited with an error", slog.String("path", c.path), slog.Any("error", err))
		err = fmt.Errorf("cmd.Wait(%s) > %w", c.command[0], err)
	}
	if onComplete != nil {
		onComplete(err)
	}
}

func (c *processClip) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop()
}

// SeekToStart is satisfied by construction: a stopped clip restarts from the beginning.
func (c *processClip) SeekToStart() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return ErrClipReleased
	}
	return nil
}

func (c *processClip) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return nil
	}
	c.released = true
	return c.stop()
}

func (c *processClip) OnCompletion(callback func(err error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onComplete = callback
}

func (c *processClip) playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cmd != nil
}

// stop kills the running process without waiting for it; the wait goroutine reaps it.
func (c *processClip) stop() error {
	if c.cmd == nil {
		return nil
	}
	cmd := c.cmd
	c.cmd = nil
	c.generation++
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("cmd.Process.Kill > %w", err)
	}
	return nil
}
