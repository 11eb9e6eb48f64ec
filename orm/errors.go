package orm

import (
	"github.com/neuronlabs/dbhelper/errors"
)

var (
	// ErrORM is the major orm error classification.
	ErrORM = errors.New("orm")

	// ErrDriver is the error classification related with the engine drivers.
	ErrDriver = errors.Wrap(ErrORM, "driver")
	// ErrDriverNotFound is the error classification when the driver is not registered.
	ErrDriverNotFound = errors.Wrap(ErrDriver, "not found")
	// ErrDriverAlreadyRegistered is the error classification when the driver with given name is already registered.
	ErrDriverAlreadyRegistered = errors.Wrap(ErrDriver, "already registered")

	// ErrEngine is the error classification related with the engines.
	ErrEngine = errors.Wrap(ErrORM, "engine")
	// ErrInvalidURL is the error classification for malformed engine urls.
	ErrInvalidURL = errors.Wrap(ErrEngine, "invalid url")
	// ErrInvalidOptions is the error classification for invalid engine options.
	ErrInvalidOptions = errors.Wrap(ErrEngine, "invalid options")
	// ErrUnsupportedDialect is the error classification for the dialects that the driver doesn't support.
	ErrUnsupportedDialect = errors.Wrap(ErrEngine, "unsupported dialect")
	// ErrEngineClosed is the error classification for the operations on closed engine.
	ErrEngineClosed = errors.Wrap(ErrEngine, "closed")

	// ErrSession is the error classification related with the sessions.
	ErrSession = errors.Wrap(ErrORM, "session")
	// ErrNoBind is the error classification when the session is not bound to any engine.
	ErrNoBind = errors.Wrap(ErrSession, "no bind")
	// ErrSessionClosed is the error classification for the operations on closed session.
	ErrSessionClosed = errors.Wrap(ErrSession, "closed")
	// ErrTxAlreadyBegan is the error classification when the session transaction had already began.
	ErrTxAlreadyBegan = errors.Wrap(ErrSession, "transaction already began")

	// ErrModel is the error classification related with the declarative models.
	ErrModel = errors.Wrap(ErrORM, "model")
	// ErrInvalidModel is the error classification for the values that could not be a model.
	ErrInvalidModel = errors.Wrap(ErrModel, "invalid")
	// ErrModelNotRegistered is the error classification for the models not registered in the base.
	ErrModelNotRegistered = errors.Wrap(ErrModel, "not registered")
	// ErrModelAlreadyRegistered is the error classification for the models or tables already registered.
	ErrModelAlreadyRegistered = errors.Wrap(ErrModel, "already registered")
)
