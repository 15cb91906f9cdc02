package flashcard

import "errors"

// Kind classifies a parse failure.
type Kind int

const (
	// EmptyInput means the text was blank or no row produced a card.
	EmptyInput Kind = iota + 1

	// InvalidFormat means a non-blank row had fewer than two fields.
	InvalidFormat
)

const (
	emptyInputMessage    = "The selected file is empty. Please choose a file with flashcard data."
	invalidFormatMessage = "Invalid CSV format. Please ensure the file has two columns: question and answer."
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case InvalidFormat:
		return "InvalidFormat"
	default:
		return "Unknown"
	}
}

// Message returns the fixed user-facing message for the kind.
func (k Kind) Message() string {
	switch k {
	case EmptyInput:
		return emptyInputMessage
	case InvalidFormat:
		return invalidFormatMessage
	default:
		return ""
	}
}

// ParseError is returned by Parse. Error() is the fixed user-facing message
// for its Kind, so callers can display it unchanged.
type ParseError struct {
	Kind Kind

	// Line is the 1-based row that failed. Only set for InvalidFormat.
	Line int
}

func (e *ParseError) Error() string {
	return e.Kind.Message()
}

// Is reports whether target is a ParseError of the same kind, so that
// errors.Is(err, ErrInvalidFormat) holds regardless of Line.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrEmptyInput    = &ParseError{Kind: EmptyInput}
	ErrInvalidFormat = &ParseError{Kind: InvalidFormat}
)

// KindOf returns the Kind of a parse error, or 0 if err is not one.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
