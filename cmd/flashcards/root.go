package main

import (
	"github.com/spf13/cobra"
)

// defaultMaxSize matches the server's default upload limit.
const defaultMaxSize int64 = 5 << 20

func newRootCommand() *cobra.Command {
	var maxSize int64

	rootCmd := &cobra.Command{
		Use:           "flashcards",
		Short:         "Work with flashcard CSV decks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().Int64Var(&maxSize, "max-size", defaultMaxSize, "Largest deck file to read, in bytes")

	rootCmd.AddCommand(newValidateCommand(&maxSize))
	rootCmd.AddCommand(newShowCommand(&maxSize))
	rootCmd.AddCommand(newNormalizeCommand(&maxSize))

	return rootCmd
}
