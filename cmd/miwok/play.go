package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/miwok/internal/cli"
)

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play <category> <number>",
		Short: "Play the pronunciation of one word and wait until it ends",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("word number must be an integer: %s", args[1])
			}
			cfg, _, category, err := loadCategory(args[0])
			if err != nil {
				return err
			}
			entry, err := category.Entry(number)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			waiter := cli.NewIdleWaiter()
			runtime, err := newPlaybackRuntime(ctx, cfg, category.ID, waiter)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := runtime.Close(); closeErr != nil && err == nil {
					err = closeErr
				}
			}()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "> %s  %s\n", entry.Miwok, entry.Native)
			reason, err := cli.PlayEntry(ctx, runtime.manager, waiter, entry)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", reason)
			return nil
		},
	}
}

func newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study <category>",
		Short: "List the words of a category and play them interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, _, category, err := loadCategory(args[0])
			if err != nil {
				return err
			}

			runtime, err := newPlaybackRuntime(cmd.Context(), cfg, category.ID)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := runtime.Close(); closeErr != nil && err == nil {
					err = closeErr
				}
			}()

			study := cli.NewStudyCLI(category, runtime.manager, cmd.InOrStdin(), cmd.OutOrStdout(), rendererOptions()...)
			return study.Run(cmd.Context())
		},
	}
}
