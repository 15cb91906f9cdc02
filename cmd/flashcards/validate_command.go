package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(maxSize *int64) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that deck files parse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				cards, err := readDeck(path, *maxSize)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: %s\n", path, describeError(err))
					continue
				}
				fmt.Fprintf(out, "%s: ok (%d cards)\n", path, len(cards))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}
}
