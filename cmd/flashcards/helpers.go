package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/JonMunkholm/flashcards/internal/core"
	"github.com/JonMunkholm/flashcards/internal/flashcard"
)

// readDeck reads and parses a deck file from any path.
func readDeck(path string, maxSize int64) ([]flashcard.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	text, _, err := core.ReadDeckText(f, maxSize)
	if err != nil {
		return nil, err
	}
	return flashcard.Parse(text)
}

// describeError renders err for the terminal, adding the failing line for
// format errors.
func describeError(err error) string {
	var pe *flashcard.ParseError
	if errors.As(err, &pe) && pe.Line > 0 {
		return fmt.Sprintf("%s (line %d)", pe.Error(), pe.Line)
	}
	return err.Error()
}
