package quiz

import (
	"errors"
	"testing"

	"github.com/przant/jeopardy-trainer/internal/domain"
)

func TestOptionLabel(t *testing.T) {
	tests := map[string]string{
		"A) x":      "A",
		"B) yes":    "B",
		" C) z":     " ",
		"":          "",
		"é) accent": "é",
	}
	for in, want := range tests {
		if got := OptionLabel(in); got != want {
			t.Errorf("OptionLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBind_MultipleChoiceSelectAndRestore(t *testing.T) {
	s := mustSession(domain.Go, []Question{
		{ID: "q1", Type: TypeMultipleChoice, Options: []string{"A) x", "B) y", "C) z"}},
		{ID: "q2", Type: TypeFillBlank},
	})

	b := s.Bind()
	if b.Answered {
		t.Fatal("fresh question should be unanswered")
	}
	if got := b.SelectedIndex(); got != -1 {
		t.Fatalf("SelectedIndex = %d, want -1", got)
	}
	if len(b.Choices) != 3 || b.Choices[1].Label != "B" {
		t.Fatalf("choices = %+v", b.Choices)
	}

	b, err := b.Choose(1)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if v, _ := s.Answer("q1"); v != "B" {
		t.Errorf("stored answer = %q, want B", v)
	}
	if b.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d, want 1", b.SelectedIndex())
	}

	s.Navigate(Forward)
	s.Navigate(Backward)

	again := s.Bind()
	if again.SelectedIndex() != 1 {
		t.Errorf("after revisit SelectedIndex = %d, want 1", again.SelectedIndex())
	}
}

func TestBind_SingleSelect(t *testing.T) {
	s := mustSession(domain.Go, []Question{
		{ID: "q1", Type: TypeMultipleChoice, Options: []string{"A) x", "B) y", "C) z"}},
	})

	b, _ := s.Bind().Choose(0)
	b, _ = b.Choose(2)

	selected := 0
	for _, c := range b.Choices {
		if c.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("selected choices = %d, want 1", selected)
	}
	if v, _ := s.Answer("q1"); v != "C" {
		t.Errorf("stored answer = %q, want C", v)
	}
}

func TestBind_RejectsUnknownLabel(t *testing.T) {
	s := mustSession(domain.Go, []Question{
		{ID: "q1", Type: TypeMultipleChoice, Options: []string{"A) x", "B) y"}},
	})

	if _, err := s.Bind().Record("Z"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Record(Z) err = %v, want ErrUnknownOption", err)
	}
	if _, err := s.Bind().Choose(5); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Choose(5) err = %v, want ErrUnknownOption", err)
	}
	if _, ok := s.Answer("q1"); ok {
		t.Error("rejected input must not create an answer entry")
	}
}

func TestBind_FillBlankRoundTrip(t *testing.T) {
	s := mustSession(domain.Linux, []Question{
		{ID: "q1", Type: TypeFillBlank},
		{ID: "q2", Type: TypeFillBlank},
	})

	b := s.Bind()
	if b.Value != "" || b.Answered {
		t.Fatalf("fresh binding = %+v", b)
	}

	// Every change is written straight through.
	for _, v := range []string{"c", "ch", "chm", "chmod"} {
		var err error
		b, err = b.Record(v)
		if err != nil {
			t.Fatalf("Record(%q): %v", v, err)
		}
		if got, _ := s.Answer("q1"); got != v {
			t.Errorf("after %q stored = %q", v, got)
		}
	}

	s.Navigate(Forward)
	if got := s.Bind().Value; got != "" {
		t.Errorf("q2 prefill = %q, want empty", got)
	}
	s.Navigate(Backward)
	if got := s.Bind().Value; got != "chmod" {
		t.Errorf("q1 prefill = %q, want chmod", got)
	}
}

func TestBind_ClearedFillBlankKeepsKey(t *testing.T) {
	s := mustSession(domain.Go, []Question{{ID: "q1", Type: TypeFillBlank}})
	b, _ := s.Bind().Record("x")
	_, _ = b.Record("")

	v, ok := s.Answer("q1")
	if !ok || v != "" {
		t.Errorf("Answer = (%q, %v), want (\"\", true)", v, ok)
	}
	if s.Answered() != 0 {
		t.Errorf("Answered = %d, want 0", s.Answered())
	}
}

func TestAnswerKeysSubsetOfQuestions(t *testing.T) {
	s := mustSession(domain.Go, testQuestions("go", 6))
	for i := 0; i < s.Len(); i++ {
		b := s.Bind()
		if b.Question.Type == TypeMultipleChoice {
			_, _ = b.Choose(i % 3)
		} else {
			_, _ = b.Record("answer")
		}
		s.Navigate(Forward)
	}

	ids := make(map[string]bool)
	for i := 0; i < s.Len(); i++ {
		ids[s.questions[i].ID] = true
	}
	for id := range s.Answers() {
		if !ids[id] {
			t.Errorf("answer key %q is not a question id", id)
		}
	}
}
