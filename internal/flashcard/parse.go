package flashcard

import (
	"strings"
	"unicode"
)

// Parse reads CSV text into cards.
//
// Each non-blank row must have at least two fields; the first two become the
// question and answer after trimming. Rows where both are blank are skipped.
// On failure no cards are returned and the error is a *ParseError.
func Parse(text string) ([]Card, error) {
	if trim(text) == "" {
		return nil, &ParseError{Kind: EmptyInput}
	}

	var cards []Card
	nextID := 1

	for i, row := range splitRows(text) {
		if trim(row) == "" {
			continue
		}

		fields := parseRow(row)
		if len(fields) < 2 {
			return nil, &ParseError{Kind: InvalidFormat, Line: i + 1}
		}

		question := trim(fields[0])
		answer := trim(fields[1])
		if question == "" && answer == "" {
			continue
		}

		cards = append(cards, Card{ID: nextID, Question: question, Answer: answer})
		nextID++
	}

	if len(cards) == 0 {
		return nil, &ParseError{Kind: EmptyInput}
	}
	return cards, nil
}

// ValidateStructure reports whether Parse would succeed on text.
func ValidateStructure(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// splitRows splits text on "\n" and "\r\n". Row content is not altered, and
// a lone "\r" that is not followed by "\n" stays in the row.
func splitRows(text string) []string {
	rows := strings.Split(text, "\n")
	for i := 0; i < len(rows)-1; i++ {
		rows[i] = strings.TrimSuffix(rows[i], "\r")
	}
	return rows
}

// parseRow splits one row into fields. It never fails: an unterminated quote
// simply runs to the end of the row, and an empty row is one empty field.
func parseRow(row string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	// '"' and ',' are single bytes that never occur inside a multi-byte
	// UTF-8 sequence, so scanning bytes keeps other text intact.
	for i := 0; i < len(row); i++ {
		c := row[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(row) && row[i+1] == '"':
			field.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	return append(fields, field.String())
}

// trim removes surrounding whitespace, including a stray byte order mark.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
