package remote

import (
	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/quiz"
)

// Stats is the seen-count breakdown of a domain's question bank.
type Stats struct {
	Domain         string `json:"domain"`
	TotalQuestions int    `json:"total_questions"`
	Unseen         int    `json:"unseen"`
	SeenOnce       int    `json:"seen_once"`
	SeenTwice      int    `json:"seen_twice"`
	Exhausted      int    `json:"exhausted"`
}

// Active is the number of questions seen at least once but not exhausted.
func (s Stats) Active() int {
	return s.SeenOnce + s.SeenTwice
}

// ServiceInfo is the body of the service root endpoint.
type ServiceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type startRequest struct {
	Domain domain.Domain `json:"domain"`
	Count  int           `json:"count"`
}

type wireQuestion struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
}

type startResponse struct {
	Domain    string         `json:"domain"`
	Questions []wireQuestion `json:"questions"`
	Count     int            `json:"count"`
}

type wireAnswer struct {
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

type submitRequest struct {
	Domain  domain.Domain `json:"domain"`
	Answers []wireAnswer  `json:"answers"`
}

type wireResult struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	IsCorrect     bool   `json:"is_correct"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

type submitResponse struct {
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Percentage float64      `json:"percentage"`
	Results    []wireResult `json:"results"`
}

func (r startResponse) questions() []quiz.Question {
	out := make([]quiz.Question, len(r.Questions))
	for i, q := range r.Questions {
		out[i] = quiz.Question{
			ID:         q.ID,
			Type:       quiz.QuestionType(q.Type),
			Difficulty: q.Difficulty,
			Text:       q.Question,
			Options:    q.Options,
		}
	}
	return out
}

func newSubmitRequest(d domain.Domain, answers []quiz.Submission) submitRequest {
	req := submitRequest{Domain: d, Answers: make([]wireAnswer, len(answers))}
	for i, a := range answers {
		req.Answers[i] = wireAnswer{QuestionID: a.QuestionID, UserAnswer: a.UserAnswer}
	}
	return req
}

func (r submitResponse) report() *quiz.Report {
	rep := &quiz.Report{
		Score:      r.Score,
		Total:      r.Total,
		Percentage: r.Percentage,
		Items:      make([]quiz.ResultItem, len(r.Results)),
	}
	for i, res := range r.Results {
		rep.Items[i] = quiz.ResultItem{
			QuestionText:  res.Question,
			IsCorrect:     res.IsCorrect,
			UserAnswer:    res.UserAnswer,
			CorrectAnswer: res.CorrectAnswer,
			Explanation:   res.Explanation,
		}
	}
	return rep
}
