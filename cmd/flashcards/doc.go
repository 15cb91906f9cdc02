// Command flashcards checks, displays and normalizes flashcard deck files
// from the terminal, using the same parser as the server.
//
//	flashcards validate decks/*.csv
//	flashcards show spanish.csv --shuffle --seed 42
//	flashcards normalize spanish.csv --write
package main
