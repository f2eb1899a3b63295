package datasync

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/miwok/internal/history"
	mock_history "github.com/at-ishikawa/miwok/internal/mocks/history"
)

func TestImporter_ImportPlayLogs(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	older := history.PlayLog{ID: 1, SessionID: "s1", Category: "numbers", MiwokText: "lutti", Outcome: history.OutcomeCompleted, StartedAt: now}
	newer := history.PlayLog{ID: 2, SessionID: "s2", Category: "numbers", MiwokText: "otiiko", Outcome: history.OutcomePreempted, StartedAt: now.Add(time.Minute)}

	tests := []struct {
		name         string
		opts         ImportOptions
		setup        func(source, destination *mock_history.MockRepository)
		want         *ImportResult
		wantErr      string
		wantContains []string
	}{
		{
			name: "new logs are created oldest first",
			setup: func(source, destination *mock_history.MockRepository) {
				source.EXPECT().FindRecent(gomock.Any(), 0).Return([]history.PlayLog{newer, older}, nil)
				gomock.InOrder(
					destination.EXPECT().FindBySessionID(gomock.Any(), "s1").Return(nil, nil),
					destination.EXPECT().Create(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, log *history.PlayLog) error {
							assert.Equal(t, "s1", log.SessionID)
							assert.Zero(t, log.ID)
							log.ID = 10
							return nil
						}),
					destination.EXPECT().FindBySessionID(gomock.Any(), "s2").Return(nil, nil),
					destination.EXPECT().Create(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, log *history.PlayLog) error {
							assert.Equal(t, "s2", log.SessionID)
							assert.Equal(t, history.OutcomePreempted, log.Outcome)
							return nil
						}),
				)
			},
			want:         &ImportResult{PlayLogsNew: 2},
			wantContains: []string{`[NEW]  s1 "lutti" (completed)`, `[NEW]  s2 "otiiko" (preempted)`},
		},
		{
			name: "existing logs are skipped",
			setup: func(source, destination *mock_history.MockRepository) {
				source.EXPECT().FindRecent(gomock.Any(), 0).Return([]history.PlayLog{newer, older}, nil)
				destination.EXPECT().FindBySessionID(gomock.Any(), "s1").Return(&older, nil)
				destination.EXPECT().FindBySessionID(gomock.Any(), "s2").Return(nil, nil)
				destination.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			want:         &ImportResult{PlayLogsNew: 1, PlayLogsSkipped: 1},
			wantContains: []string{`[SKIP]  s1 "lutti" (completed)`},
		},
		{
			name: "dry run does not write",
			opts: ImportOptions{DryRun: true},
			setup: func(source, destination *mock_history.MockRepository) {
				source.EXPECT().FindRecent(gomock.Any(), 0).Return([]history.PlayLog{older}, nil)
				destination.EXPECT().FindBySessionID(gomock.Any(), "s1").Return(nil, nil)
			},
			want:         &ImportResult{PlayLogsNew: 1},
			wantContains: []string{`[NEW]  s1`},
		},
		{
			name: "source error",
			setup: func(source, destination *mock_history.MockRepository) {
				source.EXPECT().FindRecent(gomock.Any(), 0).Return(nil, errors.New("broken file"))
			},
			wantErr: "source.FindRecent() > broken file",
		},
		{
			name: "destination error",
			setup: func(source, destination *mock_history.MockRepository) {
				source.EXPECT().FindRecent(gomock.Any(), 0).Return([]history.PlayLog{older}, nil)
				destination.EXPECT().FindBySessionID(gomock.Any(), "s1").Return(nil, nil)
				destination.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: "Create(s1) > connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mock_history.NewMockRepository(ctrl)
			destination := mock_history.NewMockRepository(ctrl)
			tt.setup(source, destination)

			var out bytes.Buffer
			got, err := NewImporter(source, destination, &out).ImportPlayLogs(context.Background(), tt.opts)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, want := range tt.wantContains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
