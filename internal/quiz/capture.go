package quiz

import "fmt"

// Choice is one selectable option of a multiple-choice question.
type Choice struct {
	Label    string
	Text     string
	Selected bool
}

// Binding is the display model of the current question together with the
// handler that writes user input back into the session. It is computed
// purely from the question and its recorded answer, so redisplaying a
// question restores whatever was captured before.
type Binding struct {
	Question Question

	// Choices is set for multiple-choice questions. At most one is Selected.
	Choices []Choice

	// Value is the recorded answer, or "" when none exists.
	Value string

	// Answered reports whether the answer map has an entry for the question.
	Answered bool

	session *Session
}

// Bind returns the binding for the displayed question.
func (s *Session) Bind() Binding {
	q := s.Current()
	value, answered := s.answers[q.ID]

	b := Binding{
		Question: q,
		Value:    value,
		Answered: answered,
		session:  s,
	}

	if q.Type == TypeMultipleChoice {
		b.Choices = make([]Choice, len(q.Options))
		for i, opt := range q.Options {
			label := OptionLabel(opt)
			b.Choices[i] = Choice{
				Label:    label,
				Text:     opt,
				Selected: answered && value == label,
			}
		}
	}

	return b
}

// SelectedIndex returns the index of the selected choice, or -1.
func (b Binding) SelectedIndex() int {
	for i, c := range b.Choices {
		if c.Selected {
			return i
		}
	}
	return -1
}

// Record captures input for the bound question. For multiple-choice the
// value must be one of the option labels; selecting a label replaces any
// earlier selection. For fill-blank any text is accepted as-is.
// The returned binding reflects the new answer.
func (b Binding) Record(value string) (Binding, error) {
	q := b.Question
	if q.Type == TypeMultipleChoice {
		found := false
		for _, c := range b.Choices {
			if c.Label == value {
				found = true
				break
			}
		}
		if !found {
			return b, fmt.Errorf("%w %q for question %s", ErrUnknownOption, value, q.ID)
		}
	}

	b.session.answers[q.ID] = value

	b.Value = value
	b.Answered = true
	for i := range b.Choices {
		b.Choices[i].Selected = b.Choices[i].Label == value
	}
	return b, nil
}

// Choose records the option at index i of a multiple-choice question.
func (b Binding) Choose(i int) (Binding, error) {
	if i < 0 || i >= len(b.Choices) {
		return b, fmt.Errorf("%w: index %d for question %s", ErrUnknownOption, i, b.Question.ID)
	}
	return b.Record(b.Choices[i].Label)
}
