package dbhelper

import (
	"github.com/neuronlabs/dbhelper/errors"
)

var (
	// ErrHelper is the major dbhelper error classification.
	ErrHelper = errors.New("dbhelper")
	// ErrNotConfigured is the error classification when the engine with given name was not configured.
	ErrNotConfigured = errors.Wrap(ErrHelper, "not configured")
)
