package validate

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError is a single validation failure attributed to one field. Only
// the first offending field of a request is reported; the order of
// precedence is chosen by the DTO.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message
}

// First collapses an ozzo validation result into the first offending field
// according to the given field order. A nil input stays nil; a non-ozzo
// error is passed through untouched.
func First(err error, order ...string) error {
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return err
	}

	for _, field := range order {
		if fieldErr, found := errs[field]; found {
			return &FieldError{Field: field, Message: fieldErr.Error()}
		}
	}

	// A field outside the declared order failed; pick deterministically.
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		return &FieldError{Field: keys[0], Message: errs[keys[0]].Error()}
	}
	return err
}
