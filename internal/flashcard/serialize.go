package flashcard

import "strings"

// Serialize writes records as CSV: one "question,answer" line per record,
// joined by "\n" with no trailing newline. Fields containing a comma, a
// double quote or a newline are quoted, with inner quotes doubled.
func Serialize[T QA](records []T) string {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeField(&b, r.QuestionText())
		b.WriteByte(',')
		writeField(&b, r.AnswerText())
	}
	return b.String()
}

func writeField(b *strings.Builder, field string) {
	if !strings.ContainsAny(field, ",\"\n") {
		b.WriteString(field)
		return
	}
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(field, `"`, `""`))
	b.WriteByte('"')
}
