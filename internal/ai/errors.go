package ai

import "errors"

// Messages shown to API callers. The wrapped cause is for logs only.
const (
	MsgMalformed     = "AI response empty or malformed"
	MsgNotConfigured = "AI service is not configured"
)

// ErrNotConfigured is the cause when no API key was provided.
var ErrNotConfigured = errors.New("openai api key is not set")

// GenerationError is any failure to turn a build request into a site plan.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

func malformed(err error) *GenerationError {
	return &GenerationError{Message: MsgMalformed, Err: err}
}
