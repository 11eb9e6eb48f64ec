package registry

import (
	"github.com/neuronlabs/dbhelper/errors"
)

var (
	// ErrRegistry is the major registry error classification.
	ErrRegistry = errors.New("registry")
	// ErrNotFound is the error classification when no handle is stored under given name.
	ErrNotFound = errors.Wrap(ErrRegistry, "not found")
)
