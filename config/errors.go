package config

import (
	"github.com/neuronlabs/dbhelper/errors"
)

var (
	// ErrConfig is the major config error classification.
	ErrConfig = errors.New("config")
	// ErrInvalidBoolean is the error classification for the values that could not be parsed as boolean.
	ErrInvalidBoolean = errors.Wrap(ErrConfig, "invalid boolean")
	// ErrInvalidValue is the error classification for the setting values of invalid format.
	ErrInvalidValue = errors.Wrap(ErrConfig, "invalid value")
	// ErrInvalidSettings is the error classification for the settings sources that could not be read.
	ErrInvalidSettings = errors.Wrap(ErrConfig, "invalid settings")
)
