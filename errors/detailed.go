package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

// DetailedError is the class based error instance. Each instance has it's own trackable ID,
// the operation name where it was created and optional details.
type DetailedError struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID
	// Class is the error classification.
	Class error
	// Details contains the detailed information.
	Details string
	// Operation is the operation name when the error occurred.
	Operation string
}

// WrapDet creates new DetailedError with given 'class' and 'detail'.
func WrapDet(class error, detail string) *DetailedError {
	err := newDetailed(class)
	err.Details = detail
	return err
}

// WrapDetf creates new DetailedError with given 'class' and formatted detail.
func WrapDetf(class error, format string, args ...interface{}) *DetailedError {
	err := newDetailed(class)
	err.Details = fmt.Sprintf(format, args...)
	return err
}

// Error implements error interface.
func (e *DetailedError) Error() string {
	if e.Details == "" {
		return e.Class.Error()
	}
	return e.Class.Error() + ": " + e.Details
}

// Unwrap gets the error classification.
func (e *DetailedError) Unwrap() error {
	return e.Class
}

// WithDetail sets the error 'detail' and returns itself.
func (e *DetailedError) WithDetail(detail string) *DetailedError {
	e.Details = detail
	return e
}

// WithDetailf sets the error's formatted detail and returns itself.
func (e *DetailedError) WithDetailf(format string, args ...interface{}) *DetailedError {
	e.Details = fmt.Sprintf(format, args...)
	return e
}

// WrapDetail wraps the 'detail' for given error. Wrapping appends the new detail
// to the front of error detail message.
func (e *DetailedError) WrapDetail(detail string) *DetailedError {
	if e.Details == "" {
		e.Details = detail
	} else {
		e.Details = detail + " " + e.Details
	}
	return e
}

func newDetailed(class error) *DetailedError {
	err := &DetailedError{
		ID:    uuid.New(),
		Class: class,
	}
	pc, _, _, ok := runtime.Caller(2)
	details := runtime.FuncForPC(pc)
	if ok && details != nil {
		file, line := details.FileLine(pc)
		_, singleFile := filepath.Split(file)
		err.Operation = details.Name() + "#" + singleFile + ":" + strconv.Itoa(line)
	}
	return err
}
