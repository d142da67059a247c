package remote

import (
	"encoding/json"
	"fmt"
)

// ErrStatus indicates the session service answered with a non-2xx status.
type ErrStatus struct {
	Endpoint string
	Code     int
	Detail   string
}

func (e *ErrStatus) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Code)
}

// ErrTransport indicates the request never produced a response: the
// service is unreachable, the connection dropped or the context expired.
type ErrTransport struct {
	Endpoint string
	Err      error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("%s: session service unreachable: %v", e.Endpoint, e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrMalformed indicates a 2xx response whose body is not the documented
// shape.
type ErrMalformed struct {
	Endpoint string
	Body     json.RawMessage
	Err      error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Endpoint, e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }

// errorBody is the error envelope the service uses for 4xx responses.
type errorBody struct {
	Detail any `json:"detail"`
}

func statusError(endpoint string, code int, body []byte) error {
	e := &ErrStatus{Endpoint: endpoint, Code: code}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != nil {
		switch d := eb.Detail.(type) {
		case string:
			e.Detail = d
		default:
			if b, err := json.Marshal(d); err == nil {
				e.Detail = string(b)
			}
		}
	}
	return e
}
