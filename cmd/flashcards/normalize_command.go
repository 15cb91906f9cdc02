package main

import (
	"fmt"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/flashcards/internal/flashcard"
)

func newNormalizeCommand(maxSize *int64) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Rewrite a deck in canonical CSV form",
		Long: "Parses the deck and serializes it again: fields trimmed, blank rows and\n" +
			"extra columns dropped, quoting applied only where needed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cards, err := readDeck(path, *maxSize)
			if err != nil {
				return fmt.Errorf("%s: %s", path, describeError(err))
			}

			text := flashcard.Serialize(cards)
			if !write {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			if err := atomic.WriteFile(path, strings.NewReader(text+"\n")); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: normalized %d cards\n", path, len(cards))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file in place instead of printing")
	return cmd
}
