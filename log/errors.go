package log

import (
	"github.com/neuronlabs/dbhelper/errors"
)

var (
	// ErrLogger is the major logger error classification.
	ErrLogger = errors.New("logger")
	// ErrUnknownLevel is the error classification for unknown logger levels.
	ErrUnknownLevel = errors.Wrap(ErrLogger, "unknown level")
	// ErrNotImplements is the error classification for loggers that doesn't implement required interface.
	ErrNotImplements = errors.Wrap(ErrLogger, "not implements")
)
