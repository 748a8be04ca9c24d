package rop

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// Separator joins code and message in the text form of an Error.
const Separator = "||"

// ErrMalformedError is returned when a serialized Error cannot be parsed.
var ErrMalformedError = errors.New("malformed error")

// Error is a recoverable domain failure identified by a stable, machine-readable
// code and a human-readable message. Errors are immutable and compared by
// content: two errors with the same code and message are interchangeable.
type Error struct {
	code    string
	message string
}

// Of pairs a code with a message.
func Of(code, message string) *Error {
	return &Error{code: code, message: message}
}

// ParseError reads an Error from its text form "code||message".
func ParseError(s string) (*Error, error) {
	code, message, found := strings.Cut(s, Separator)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrMalformedError, s)
	}
	// anything after a second separator is dropped
	message, _, _ = strings.Cut(message, Separator)
	return wireError{Code: code, Message: message}.toError()
}

func (e *Error) Code() string {
	return e.code
}

func (e *Error) Message() string {
	return e.message
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.code + ": " + e.message
}

func (e *Error) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Error{code='%s', message='%s'}", e.code, e.message)
}

// Equal reports whether both errors carry the same code and message.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	return *e == *other
}

// Is makes errors.Is match on content rather than identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Equal(t)
}

func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("code", e.code),
		slog.String("message", e.message),
	)
}

func (e *Error) MarshalText() ([]byte, error) {
	return []byte(e.code + Separator + e.message), nil
}

func (e *Error) UnmarshalText(text []byte) error {
	parsed, err := ParseError(string(text))
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

type wireError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func (w wireError) toError() (*Error, error) {
	if w.Code == "" || w.Message == "" {
		return nil, fmt.Errorf("%w: code and message are required", ErrMalformedError)
	}
	return Of(w.Code, w.Message), nil
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireError{Code: e.code, Message: e.message})
}

func (e *Error) UnmarshalJSON(data []byte) error {
	var w wireError
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	parsed, err := w.toError()
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

func (e *Error) MarshalYAML() (interface{}, error) {
	return wireError{Code: e.code, Message: e.message}, nil
}

func (e *Error) UnmarshalYAML(value *yaml.Node) error {
	var w wireError
	if err := value.Decode(&w); err != nil {
		return err
	}
	parsed, err := w.toError()
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}
