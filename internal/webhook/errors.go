package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError
var ErrValidation = errors.New("invalid webhook payload")

// ValidationError describes why an inbound payload was rejected before persistence
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// decodeError turns a json decoding failure into a ValidationError on the offending field.
func decodeError(prefix string, err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = prefix
		} else if prefix != "" {
			field = prefix + "." + field
		}
		return invalid(field, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return invalid(orDefault(prefix, "body"), fmt.Sprintf("malformed json at offset %d", syntaxErr.Offset))
	}

	return invalid(orDefault(prefix, "body"), err.Error())
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
