package predictor

import "errors"

// ErrUnavailable is matched by every provider failure, whatever its kind.
var ErrUnavailable = errors.New("prediction provider unavailable")

// FailureKind tells provider failures apart for logs and metrics.
type FailureKind string

const (
	KindConfigMissing FailureKind = "config_missing"
	KindTimeout       FailureKind = "timeout"
	KindConnection    FailureKind = "connection_error"
	KindResponse      FailureKind = "response_error"
)

// Error is the single error type returned by providers.
type Error struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrUnavailable }

// KindOf reports the failure kind carried by err, if any.
func KindOf(err error) (FailureKind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

func configError(msg string, err error) *Error {
	return &Error{Kind: KindConfigMissing, Message: msg, Err: err}
}

func timeoutError(msg string, err error) *Error {
	return &Error{Kind: KindTimeout, Message: msg, Err: err}
}

func connectionError(msg string, err error) *Error {
	return &Error{Kind: KindConnection, Message: msg, Err: err}
}

func responseError(msg string, err error) *Error {
	return &Error{Kind: KindResponse, Message: msg, Err: err}
}
