package llm

import (
	"errors"
	"fmt"
)

// CompletionError reports a failed completion call: transport, auth, quota or an
// empty candidate list. It is the only failure the synthesizers surface to callers.
type CompletionError struct {
	Provider Provider
	Model    string
	Message  string
	Cause    error
}

func (e *CompletionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "completion failed"
	}
	if e.Model != "" {
		msg = fmt.Sprintf("%s (%s/%s)", msg, e.Provider, e.Model)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CompletionError) Unwrap() error {
	return e.Cause
}

// WrapCompletion returns err unchanged when it already is a *CompletionError and
// wraps it otherwise. A nil err stays nil.
func WrapCompletion(err error, message string) error {
	if err == nil {
		return nil
	}
	var completionErr *CompletionError
	if errors.As(err, &completionErr) {
		return err
	}
	return &CompletionError{Message: message, Cause: err}
}
