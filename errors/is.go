package errors

import (
	"errors"
)

// Is checks if given error or any error in it's chain matches the 'class'.
func Is(err, class error) bool {
	return errors.Is(err, class)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
