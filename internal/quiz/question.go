package quiz

// QuestionType selects the answer input modality for a question.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeFillBlank      QuestionType = "fill-blank"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	return t == TypeMultipleChoice || t == TypeFillBlank
}

// Question is a single quiz question as served by the session service.
// Questions are immutable once received.
type Question struct {
	ID         string
	Type       QuestionType
	Difficulty string
	Text       string

	// Options holds the labeled choices ("A) ...") for multiple-choice
	// questions. Nil for fill-blank.
	Options []string
}

// OptionLabel returns the label of an option: its leading character.
func OptionLabel(option string) string {
	if option == "" {
		return ""
	}
	r := []rune(option)
	return string(r[0])
}

// Submission is one entry of the scoring payload.
type Submission struct {
	QuestionID string
	UserAnswer string
}

// ResultItem is the service's verdict on a single question.
type ResultItem struct {
	QuestionText  string
	IsCorrect     bool
	UserAnswer    string
	CorrectAnswer string
	Explanation   string
}

// Report is the scored outcome of a submitted session.
type Report struct {
	Score      int
	Total      int
	Percentage float64
	Items      []ResultItem
}
