package domain

import "fmt"

// ErrorKind classifies a generation failure.
type ErrorKind string

const (
	ErrMissingStorage ErrorKind = "missing storage identifier"
	ErrNoFilterFields ErrorKind = "no filterable fields"
	ErrMalformedType  ErrorKind = "malformed field type"
)

// Error lets a kind be used as an errors.Is target.
func (k ErrorKind) Error() string {
	return string(k)
}

// GenerationError aborts code generation. It names the offending record and,
// where there is one, the field.
type GenerationError struct {
	Kind   ErrorKind
	Record string
	Field  string
	Msg    string
}

func (e *GenerationError) Error() string {
	subject := "record " + e.Record
	if e.Field != "" {
		subject += ", field " + e.Field
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", subject, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", subject, e.Kind, e.Msg)
}

// Is matches a bare ErrorKind.
func (e *GenerationError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}
