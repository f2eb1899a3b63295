package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/at-ishikawa/miwok/internal/playback"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

//go:generate mockgen -source=study.go -destination=../mocks/cli/mock_player.go -package=mock_cli Player

// Player is the part of the playback manager a screen drives.
type Player interface {
	SelectEntry(entry vocabulary.Entry)
	Teardown()
	Session() playback.Session
}

// StudyCLI lists the words of one category and plays the pronunciation of the chosen one.
// Closing the screen always tears the player down.
type StudyCLI struct {
	*InteractiveCLI
	category vocabulary.Category
	player   Player
	renderer *vocabulary.Renderer
}

func NewStudyCLI(category vocabulary.Category, player Player, stdin io.Reader, stdout io.Writer, options ...vocabulary.RendererOption) *StudyCLI {
	return &StudyCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		category:       category,
		player:         player,
		renderer:       vocabulary.NewRenderer(stdout, options...),
	}
}

func (cli *StudyCLI) Run(ctx context.Context) error {
	defer cli.player.Teardown()

	if err := cli.renderer.RenderCategory(cli.category); err != nil {
		return fmt.Errorf("renderer.RenderCategory > %w", err)
	}
	return cli.InteractiveCLI.Run(ctx, cli)
}

// Session reads one command: a word number, p for the playback state or q to quit.
func (cli *StudyCLI) Session(ctx context.Context) error {
	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "\nword number (1-%d), p: status, q: quit> ", len(cli.category.Entries))
	line, err := cli.readLine()
	if err != nil {
		return err
	}

	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "":
		return nil
	case "q", "quit", "exit":
		return errEnd
	case "p", "status":
		cli.printSession(cli.player.Session())
		return nil
	}

	number, err := strconv.Atoi(input)
	if err != nil {
		_, _ = cli.warn.Fprintf(cli.stdoutWriter, "unknown command: %s\n", input)
		return nil
	}
	entry, err := cli.category.Entry(number)
	if err != nil {
		if errors.Is(err, vocabulary.ErrEntryNotFound) {
			_, _ = cli.warn.Fprintf(cli.stdoutWriter, "choose a number between 1 and %d\n", len(cli.category.Entries))
			return nil
		}
		return fmt.Errorf("category.Entry(%d) > %w", number, err)
	}

	cli.player.SelectEntry(entry)
	session := cli.player.Session()
	if session.State == playback.StateIdle {
		_, _ = cli.warn.Fprintf(cli.stdoutWriter, "could not play %s\n", entry.Miwok)
		return nil
	}
	_, _ = fmt.Fprintf(cli.stdoutWriter, "%s %s  %s\n", cli.faint.Sprint(">"), cli.bold.Sprint(entry.Miwok), entry.Native)
	return nil
}

func (cli *StudyCLI) printSession(session playback.Session) {
	if session.State == playback.StateIdle {
		_, _ = fmt.Fprintln(cli.stdoutWriter, "idle")
		return
	}
	_, _ = fmt.Fprintf(cli.stdoutWriter, "%s: %s (%s) focus=%t\n",
		session.State, session.Entry.Miwok, session.Entry.Native, session.FocusHeld)
}
