package errors

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure modes.
var (
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrUnknownKind          = errors.New("unknown snippet kind")
	ErrInvalidInput         = errors.New("invalid input")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every field failure of one snippet.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

// Is lets errors.Is(err, ErrInvalidInput) match any validation failure.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidInput && len(e) > 0
}
