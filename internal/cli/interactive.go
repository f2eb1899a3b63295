// Package cli implements the interactive study screen and one-shot playback.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
)

var errEnd = errors.New("end")

// InteractiveCLI holds the terminal shared by interactive screens.
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	faint        *color.Color
	warn         *color.Color
}

func newInteractiveCLI(stdin io.Reader, stdout io.Writer) *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		faint:        color.New(color.Faint),
		warn:         color.New(color.FgRed),
	}
}

//go:generate mockgen -source=interactive.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

// Session is one prompt and its response. It returns errEnd when the screen should close.
type Session interface {
	Session(ctx context.Context) error
}

// Run repeats session until it ends, fails, or the process is interrupted.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		for ctx.Err() == nil {
			if err := session.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}
	if ctx.Err() != nil {
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	}
	return nil
}

// readLine returns the next line without its line break, or errEnd at the end of input.
func (cli *InteractiveCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", errEnd
		}
		return "", fmt.Errorf("stdinReader.ReadString > %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
