package inference

import "fmt"

// Kind classifies what went wrong on an inference call. The caller never
// retries; the message is shown to the user as-is.
type Kind string

const (
	// KindConfig means the API credential is missing from the environment.
	KindConfig Kind = "config"
	// KindTransport covers dial/timeout/read failures before a response arrived.
	KindTransport Kind = "transport"
	// KindStatus means the provider answered with a non-2xx status.
	KindStatus Kind = "status"
	// KindDecode means the response envelope or the model's JSON reply could
	// not be decoded.
	KindDecode Kind = "decode"
)

// Error is the structured failure for both inference entry points.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
