package flashcard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Card
	}{
		{
			name:  "two rows",
			input: "q1,a1\nq2,a2",
			want:  []Card{{1, "q1", "a1"}, {2, "q2", "a2"}},
		},
		{
			name:  "chinese text",
			input: "问题1,答案1\n问题2,答案2",
			want:  []Card{{1, "问题1", "答案1"}, {2, "问题2", "答案2"}},
		},
		{
			name:  "long multibyte row",
			input: "19世纪初拉丁美洲独立运动的背景之一是什么？,西班牙、葡萄牙残酷的殖民统治引发了拉丁美洲人民的强烈不满。",
			want: []Card{{
				1,
				"19世纪初拉丁美洲独立运动的背景之一是什么？",
				"西班牙、葡萄牙残酷的殖民统治引发了拉丁美洲人民的强烈不满。",
			}},
		},
		{
			name:  "crlf line endings",
			input: "q1,a1\r\nq2,a2",
			want:  []Card{{1, "q1", "a1"}, {2, "q2", "a2"}},
		},
		{
			name:  "mixed line endings",
			input: "q1,a1\r\nq2,a2\nq3,a3\r\n",
			want:  []Card{{1, "q1", "a1"}, {2, "q2", "a2"}, {3, "q3", "a3"}},
		},
		{
			name:  "blank and whitespace rows skipped",
			input: "q1,a1\n\n  ,  \nq2,a2",
			want:  []Card{{1, "q1", "a1"}, {2, "q2", "a2"}},
		},
		{
			name:  "trailing blank rows",
			input: "问题1,答案1\n\n问题2,答案2\n\n",
			want:  []Card{{1, "问题1", "答案1"}, {2, "问题2", "答案2"}},
		},
		{
			name:  "trailing commas ignored",
			input: "q1,a1,\nq2,a2,",
			want:  []Card{{1, "q1", "a1"}, {2, "q2", "a2"}},
		},
		{
			name:  "extra columns ignored",
			input: "q1,a1,note,tag",
			want:  []Card{{1, "q1", "a1"}},
		},
		{
			name:  "fields trimmed",
			input: "  q1  ,\ta1 \t",
			want:  []Card{{1, "q1", "a1"}},
		},
		{
			name:  "quoted comma",
			input: `"a,b",c`,
			want:  []Card{{1, "a,b", "c"}},
		},
		{
			name:  "quoted comma in both columns",
			input: "\"问题, with comma\",答案1\n问题2,\"答案, with comma\"",
			want:  []Card{{1, "问题, with comma", "答案1"}, {2, "问题2", "答案, with comma"}},
		},
		{
			name:  "escaped quotes",
			input: `"a ""q"" b",c`,
			want:  []Card{{1, `a "q" b`, "c"}},
		},
		{
			name:  "quote in middle of field toggles",
			input: `ab"c,d"e,f`,
			want:  []Card{{1, "abc,de", "f"}},
		},
		{
			name:  "empty question allowed",
			input: ",a1",
			want:  []Card{{1, "", "a1"}},
		},
		{
			name:  "empty answer allowed",
			input: "q1,",
			want:  []Card{{1, "q1", ""}},
		},
		{
			name:  "ids skip nothing after skipped rows",
			input: " , \nq1,a1\n,\n\nq2,a2",
			want:  []Card{{1, "q1", "a1"}, {2, "q2", "a2"}},
		},
		{
			name:  "byte order mark trimmed",
			input: "\uFEFFq1,a1",
			want:  []Card{{1, "q1", "a1"}},
		},
		{
			name:  "lone carriage return is not a row break",
			input: "q1,a\r1",
			want:  []Card{{1, "q1", "a\r1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// An unterminated quote is accepted: the rest of the row becomes part of the
// open field. Pinned so any change to this policy is deliberate.
func TestParse_UnterminatedQuoteAccepted(t *testing.T) {
	got, err := Parse("q1,\"open answer, still open\nq2,a2")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := []Card{
		{1, "q1", "open answer, still open"},
		{2, "q2", "a2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// Quote opened in the first field swallows the separator, leaving one field.
	if _, err := Parse(`"q1,a1`); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", `"q1,a1`, err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantLine int
	}{
		{"empty", "", EmptyInput, 0},
		{"spaces", "   ", EmptyInput, 0},
		{"newlines only", "\n\r\n\n", EmptyInput, 0},
		{"all rows blank after parse", " , \n,\n\t,\t", EmptyInput, 0},
		{"single column", "onlyonecolumn", InvalidFormat, 1},
		{"chinese single column", "只有一列", InvalidFormat, 1},
		{"two single column rows", "a\nb", InvalidFormat, 1},
		{"bad row after good rows", "q1,a1\n\nq3", InvalidFormat, 3},
		{"quoted comma only", `"a,b"`, InvalidFormat, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, cards)
			}
			if cards != nil {
				t.Errorf("Parse(%q) returned %d cards with error", tt.input, len(cards))
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if pe.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", pe.Kind, tt.wantKind)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if err.Error() != tt.wantKind.Message() {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantKind.Message())
			}
		})
	}
}

func TestParse_StopsAtFirstInvalidRow(t *testing.T) {
	_, err := Parse("q1,a1\nbad\nworse\nq4,a4")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
}

func TestParse_SequentialIDs(t *testing.T) {
	input := "\n, \na,1\n\nb,2\n  \nc,3\n,\nd,4"
	cards, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	for i, c := range cards {
		if c.ID != i+1 {
			t.Errorf("cards[%d].ID = %d, want %d", i, c.ID, i+1)
		}
	}
	if len(cards) != 4 {
		t.Errorf("len = %d, want 4", len(cards))
	}
}

func TestParse_LineEndingsEquivalent(t *testing.T) {
	lf, err := Parse("q1,a1\nq2,a2")
	if err != nil {
		t.Fatal(err)
	}
	crlf, err := Parse("q1,a1\r\nq2,a2")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(lf, crlf); diff != "" {
		t.Errorf("LF and CRLF differ (-lf +crlf):\n%s", diff)
	}
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"问题1,答案1\n问题2,答案2", true},
		{"只有一列", false},
		{"", false},
		{"   ", false},
		{" , ", false},
		{"q,a,", true},
	}
	for _, tt := range tests {
		if got := ValidateStructure(tt.input); got != tt.want {
			t.Errorf("ValidateStructure(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSplitRows(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\n", []string{"a", ""}},
		{"a\r\n\r\nb", []string{"a", "", "b"}},
		{"  a  \n", []string{"  a  ", ""}},
		{"a\r", []string{"a\r"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitRows(tt.input)); diff != "" {
			t.Errorf("splitRows(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{""}},
		{",", []string{"", ""}},
		{"a,b,c", []string{"a", "b", "c"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`"a ""q"" b",c`, []string{`a "q" b`, "c"}},
		{`""`, []string{""}},
		{`""""`, []string{`"`}},
		{`"a`, []string{"a"}},
		{`"a,b`, []string{"a,b"}},
		{` "x" , y `, []string{" x ", " y "}},
		{`a""b,c`, []string{"ab", "c"}},
		{"问题,答案", []string{"问题", "答案"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, parseRow(tt.input)); diff != "" {
			t.Errorf("parseRow(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestErrorsIs(t *testing.T) {
	err := &ParseError{Kind: InvalidFormat, Line: 7}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("errors.Is(InvalidFormat line 7, ErrInvalidFormat) = false")
	}
	if errors.Is(err, ErrEmptyInput) {
		t.Error("errors.Is(InvalidFormat, ErrEmptyInput) = true")
	}
	if got := KindOf(err); got != InvalidFormat {
		t.Errorf("KindOf = %v, want InvalidFormat", got)
	}
	if got := KindOf(errors.New("other")); got != 0 {
		t.Errorf("KindOf(other) = %v, want 0", got)
	}
}
