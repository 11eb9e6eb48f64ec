package errors

import (
	"strings"
)

// MultiError is the slice of errors parsable into a single error.
type MultiError []error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}

	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

// Is checks if any of the errors matches the 'class'.
func (m MultiError) Is(class error) bool {
	for _, e := range m {
		if Is(e, class) {
			return true
		}
	}
	return false
}

// ErrorOrNil returns nil for an empty MultiError. Otherwise it returns itself.
func (m MultiError) ErrorOrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}
