// Package flashcard converts between CSV text and flashcard records.
//
// The format is a two-column CSV: the first field of each row is the question,
// the second the answer. Parsing is deliberately forgiving about layout and
// strict about structure:
//
//   - Rows end on "\n" or "\r\n"; both may appear in one input.
//   - Blank rows, and rows whose question and answer are both blank, are skipped.
//   - Fields past the second are ignored, so trailing commas are harmless.
//   - A row with fewer than two fields fails the whole parse.
//
// Quoting follows the usual CSV convention within a single row. A field may be
// wrapped in double quotes, commas inside quotes are literal, and a doubled
// quote ("") inside quotes is one literal quote. Quotes never span rows.
//
// # Errors
//
// A parse fails with exactly one of two kinds, both carrying a fixed message
// suitable for showing to users verbatim:
//
//   - [EmptyInput]: the text is blank or no row produced a card.
//   - [InvalidFormat]: a non-blank row has fewer than two fields.
//
// Use errors.Is with [ErrEmptyInput] or [ErrInvalidFormat], or [KindOf].
//
// # Round Trip
//
// [Serialize] quotes only the fields that need it, so for records without
// control characters Parse(Serialize(cards)) returns the same questions and
// answers, renumbered from 1.
//
// Every function in this package is pure and safe for concurrent use.
package flashcard
