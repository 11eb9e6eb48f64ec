package dbhelper

import (
	"github.com/neuronlabs/dbhelper/orm"
	"github.com/neuronlabs/dbhelper/txn"
)

// Default option values.
const (
	DefaultName         = "default"
	DefaultURLKey       = "sqlalchemy.url"
	DefaultEnginePrefix = "sqlalchemy."
	DefaultNamespace    = "sqlahelper"
)

// Options are the helper options.
type Options struct {
	// Drivers is the container of the drivers used to create the engines from the settings.
	// By default the global orm drivers are used.
	Drivers *orm.Drivers
	// DefaultURLKey is the settings key of the default engine url.
	DefaultURLKey string
	// EnginePrefix is the settings prefix of the default engine options.
	EnginePrefix string
	// Namespace is the first segment of the named engine settings keys: '<namespace>.<name>.url'.
	Namespace string
	// TransactionManager is the manager the default sessions are joined to.
	TransactionManager *txn.Manager
}

// Option is the function that changes the helper options.
type Option func(o *Options)

// WithDrivers sets the drivers container.
func WithDrivers(drivers *orm.Drivers) Option {
	return func(o *Options) {
		o.Drivers = drivers
	}
}

// WithDefaultURLKey sets the settings key of the default engine url.
func WithDefaultURLKey(key string) Option {
	return func(o *Options) {
		o.DefaultURLKey = key
	}
}

// WithEnginePrefix sets the settings prefix of the default engine options.
func WithEnginePrefix(prefix string) Option {
	return func(o *Options) {
		o.EnginePrefix = prefix
	}
}

// WithNamespace sets the namespace of the named engine settings.
func WithNamespace(namespace string) Option {
	return func(o *Options) {
		o.Namespace = namespace
	}
}

// WithTransactionManager sets the transaction manager.
func WithTransactionManager(m *txn.Manager) Option {
	return func(o *Options) {
		o.TransactionManager = m
	}
}

func defaultOptions() *Options {
	return &Options{
		DefaultURLKey: DefaultURLKey,
		EnginePrefix:  DefaultEnginePrefix,
		Namespace:     DefaultNamespace,
	}
}
