package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/flashcards/internal/deck"
)

func newShowCommand(maxSize *int64) *cobra.Command {
	var shuffle bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a deck as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := readDeck(args[0], *maxSize)
			if err != nil {
				return fmt.Errorf("%s: %s", args[0], describeError(err))
			}

			d := deck.New(cards)
			if shuffle {
				if !cmd.Flags().Changed("seed") {
					seed = time.Now().UnixNano()
				}
				d.Shuffle(rand.New(rand.NewSource(seed)))
			}

			rows := make([][]string, 0, d.Len())
			for _, c := range d.Cards() {
				rows = append(rows, []string{strconv.Itoa(c.ID), c.Question, c.Answer})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Question", "Answer"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d cards\n", d.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "Show cards in random order")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for --shuffle, for a repeatable order")
	return cmd
}
