package errors

import (
	"fmt"
)

// classError is the classified error definition. It is used both as a sentinel classification
// and as an error instance derived from one.
type classError struct {
	parent  error
	message string
}

// Error implements error interface.
func (e *classError) Error() string {
	if e.parent == nil {
		return e.message
	}
	return e.parent.Error() + ": " + e.message
}

// Unwrap gets the parent classification.
func (e *classError) Unwrap() error {
	return e.parent
}

// New creates new top level error classification with given 'message'.
func New(message string) error {
	return &classError{message: message}
}

// Wrap creates an error that is classified by the 'class' and extends it with given 'message'.
// The result might be used as a sub classification or as a returned error instance.
func Wrap(class error, message string) error {
	return &classError{parent: class, message: message}
}

// Wrapf creates an error classified by the 'class' with formatted message.
func Wrapf(class error, format string, args ...interface{}) error {
	return &classError{parent: class, message: fmt.Sprintf(format, args...)}
}
