package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySession is returned when the service hands back no questions.
	ErrEmptySession = errors.New("session has no questions")
	// ErrSessionConsumed is returned when submitting a session that was already scored.
	ErrSessionConsumed = errors.New("session already submitted")
	// ErrUnknownOption is returned when recording a label that is not one of the options.
	ErrUnknownOption = errors.New("unknown option label")
)

// MalformedQuestionError reports a question that cannot be displayed.
type MalformedQuestionError struct {
	Index  int
	ID     string
	Reason string
}

func (e *MalformedQuestionError) Error() string {
	return fmt.Sprintf("malformed question %d (%q): %s", e.Index, e.ID, e.Reason)
}
