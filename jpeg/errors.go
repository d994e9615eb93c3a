package jpeg

import "fmt"

// DecodeError is the single failure kind surfaced by the decoder. Every
// structural, unsupported-feature, semantic, and bitstream problem collapses
// into it, parametrized by a human-readable reason.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "invalid JPEG: " + e.Reason
}

func newError(reason string) error {
	return &DecodeError{Reason: reason}
}

func errorf(format string, args ...any) error {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}
