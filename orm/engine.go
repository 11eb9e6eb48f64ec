package orm

import (
	"context"
	"time"

	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/dbhelper/errors"
)

// Engine is the source of the database connections and transactions. The engine should connect
// lazily - creating an engine must not perform any I/O.
type Engine interface {
	// DriverName gets the name of the driver that created given engine.
	DriverName() string
	// URL gets the engine connection url.
	URL() *URL
	// Echo checks if the engine logs its statements.
	Echo() bool
	// SetEcho enables or disables logging the engine statements.
	SetEcho(echo bool)
	// Begin starts new transaction.
	Begin(ctx context.Context) (Tx, error)
	// Ping checks the engine connection, connecting if needed.
	Ping(ctx context.Context) error
	// Close closes the engine connections.
	Close() error
}

// Tx is an in-progress engine transaction.
type Tx interface {
	Commit() error
	Rollback() error
}

var validate = validator.New()

// EngineOptions are the options used while creating an engine.
type EngineOptions struct {
	// Echo enables the statements logging.
	Echo bool
	// MaxOpenConns is the maximum number of open connections. Zero means no limit.
	MaxOpenConns int `validate:"gte=0"`
	// MaxIdleConns is the maximum number of idle connections. Zero means driver default.
	MaxIdleConns int `validate:"gte=0"`
	// ConnMaxLifetime is the maximum time a connection may be reused. Zero means forever.
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// Validate validates the engine options.
func (o *EngineOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return errors.WrapDetf(ErrInvalidOptions, "%v", err)
	}
	return nil
}

// EngineOption is the function that changes the engine options.
type EngineOption func(o *EngineOptions)

// WithEcho sets the echo option.
func WithEcho(echo bool) EngineOption {
	return func(o *EngineOptions) {
		o.Echo = echo
	}
}

// WithMaxOpenConns sets the maximum number of open connections.
func WithMaxOpenConns(n int) EngineOption {
	return func(o *EngineOptions) {
		o.MaxOpenConns = n
	}
}

// WithMaxIdleConns sets the maximum number of idle connections.
func WithMaxIdleConns(n int) EngineOption {
	return func(o *EngineOptions) {
		o.MaxIdleConns = n
	}
}

// WithConnMaxLifetime sets the maximum connection lifetime.
func WithConnMaxLifetime(d time.Duration) EngineOption {
	return func(o *EngineOptions) {
		o.ConnMaxLifetime = d
	}
}

// NewEngineOptions creates the engine options and validates them.
func NewEngineOptions(options ...EngineOption) (*EngineOptions, error) {
	o := &EngineOptions{}
	for _, option := range options {
		option(o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
