package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

type playLogFile struct {
	PlayLogs []PlayLog `yaml:"play_logs"`
}

// YAMLRepository stores play logs in a single YAML file.
type YAMLRepository struct {
	path string
	mu   sync.Mutex
}

func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path}
}

func (r *YAMLRepository) Create(_ context.Context, log *PlayLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return err
	}
	var lastID int64
	for _, existing := range file.PlayLogs {
		lastID = max(lastID, existing.ID)
	}
	log.ID = lastID + 1
	file.PlayLogs = append(file.PlayLogs, *log)

	return r.write(file)
}

func (r *YAMLRepository) FindRecent(_ context.Context, limit int) ([]PlayLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return nil, err
	}
	logs := file.PlayLogs
	slices.SortStableFunc(logs, func(a, b PlayLog) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (r *YAMLRepository) FindBySessionID(_ context.Context, sessionID string) (*PlayLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return nil, err
	}
	for i := range file.PlayLogs {
		if file.PlayLogs[i].SessionID == sessionID {
			return &file.PlayLogs[i], nil
		}
	}
	return nil, nil
}

func (r *YAMLRepository) read() (playLogFile, error) {
	var file playLogFile
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return file, nil
	}
	if err != nil {
		return file, fmt.Errorf("os.ReadFile(%s) > %w", r.path, err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("yaml.Unmarshal(%s) > %w", r.path, err)
	}
	return file, nil
}

func (r *YAMLRepository) write(file playLogFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", r.path, err)
	}
	return nil
}
