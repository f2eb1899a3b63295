// Package clip downloads pronunciation clips into the local clip directory.
package clip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

// StatusError is returned when the clip server answers with an error status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type Fetcher struct {
	httpClient       *resty.Client
	directory        string
	extension        string
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewFetcher(baseURL, directory, extension string, retryAttempts uint) *Fetcher {
	client := resty.New()
	client.SetBaseURL(baseURL)

	return &Fetcher{
		httpClient:       client,
		directory:        directory,
		extension:        extension,
		maxRetryAttempts: retryAttempts,
		retryDelay:       100 * time.Millisecond,
	}
}

func (fetcher *Fetcher) Close() error {
	return fetcher.httpClient.Close()
}

// Path returns where the clip for handle is stored.
func (fetcher *Fetcher) Path(handle string) string {
	return filepath.Join(fetcher.directory, handle+"."+fetcher.extension)
}

// Cached reports whether the clip already exists locally.
func (fetcher *Fetcher) Cached(handle string) bool {
	info, err := os.Stat(fetcher.Path(handle))
	return err == nil && !info.IsDir()
}

// Fetch returns the local path of the clip, downloading it first when it is missing.
func (fetcher *Fetcher) Fetch(ctx context.Context, handle string) (string, error) {
	if err := vocabulary.ValidateClipHandle(handle); err != nil {
		return "", err
	}
	path := fetcher.Path(handle)
	if fetcher.Cached(handle) {
		return path, nil
	}

	var contents []byte
	if err := retry.Do(
		func() error {
			body, err := fetcher.download(ctx, handle)
			if err != nil {
				var statusErr *StatusError
				if errors.As(err, &statusErr) && !statusErr.retryable() {
					return retry.Unrecoverable(err)
				}
				slog.Default().Debug("clip download failed", "handle", handle, "error", err)
				return err
			}
			contents = body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(fetcher.maxRetryAttempts+1),
		retry.Delay(fetcher.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", fmt.Errorf("download(%s) > %w", handle, err)
	}

	if err := fetcher.store(path, contents); err != nil {
		return "", fmt.Errorf("store(%s) > %w", path, err)
	}
	return path, nil
}

func (fetcher *Fetcher) download(ctx context.Context, handle string) ([]byte, error) {
	response, err := fetcher.httpClient.R().
		SetContext(ctx).
		SetPathParam("clip", handle+"."+fetcher.extension).
		Get("/{clip}")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	body := response.Bytes()
	if len(body) == 0 {
		return nil, fmt.Errorf("empty clip: %s", handle)
	}
	return body, nil
}

// store writes through a temporary file so a partial download never looks cached.
func (fetcher *Fetcher) store(path string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(file.Name(), path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

type FetchReport struct {
	Downloaded []string
	Cached     []string
	Failed     map[string]error
}

// FetchCategory fetches every clip of the category and keeps going after a failure.
func (fetcher *Fetcher) FetchCategory(ctx context.Context, category vocabulary.Category) FetchReport {
	report := FetchReport{
		Failed: make(map[string]error),
	}
	for _, handle := range category.Clips() {
		if fetcher.Cached(handle) {
			report.Cached = append(report.Cached, handle)
			continue
		}
		if _, err := fetcher.Fetch(ctx, handle); err != nil {
			report.Failed[handle] = err
			continue
		}
		report.Downloaded = append(report.Downloaded, handle)
	}
	return report
}
