package quiz

// Payload builds the scoring payload: one entry per question in original
// order. Unanswered questions contribute an empty answer and are never
// omitted.
func (s *Session) Payload() []Submission {
	out := make([]Submission, len(s.questions))
	for i, q := range s.questions {
		out[i] = Submission{
			QuestionID: q.ID,
			UserAnswer: s.answers[q.ID],
		}
	}
	return out
}

// Incorrect returns how many items were scored incorrect.
func (r *Report) Incorrect() int {
	n := 0
	for _, it := range r.Items {
		if !it.IsCorrect {
			n++
		}
	}
	return n
}
