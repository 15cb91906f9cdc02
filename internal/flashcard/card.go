package flashcard

// Card is one flashcard parsed from a CSV row.
type Card struct {
	// ID is the 1-based position among accepted rows. Skipped rows do not
	// consume an ID, so IDs are always 1..n with no gaps.
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QA is anything that exposes question and answer text for serialization.
type QA interface {
	QuestionText() string
	AnswerText() string
}

// QuestionText implements QA.
func (c Card) QuestionText() string { return c.Question }

// AnswerText implements QA.
func (c Card) AnswerText() string { return c.Answer }

// Pair is a bare question/answer pair, for callers that build records
// without IDs (tests, converters).
type Pair struct {
	Question string
	Answer   string
}

// QuestionText implements QA.
func (p Pair) QuestionText() string { return p.Question }

// AnswerText implements QA.
func (p Pair) AnswerText() string { return p.Answer }
