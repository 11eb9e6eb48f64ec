package orm

import (
	"sync"
)

// SessionOptions are the options of the sessions created by the Sessionmaker.
type SessionOptions struct {
	// Bind is the engine the sessions are bound to.
	Bind Engine
	// Extensions are the session extensions.
	Extensions []Extension
}

// SessionOption is an option function that changes the session options.
type SessionOption func(o *SessionOptions)

// WithBind binds the sessions to the engine 'e'.
func WithBind(e Engine) SessionOption {
	return func(o *SessionOptions) {
		o.Bind = e
	}
}

// WithExtensions sets the session extensions. The option replaces all previously configured
// extensions - in order to keep them they need to be provided again.
func WithExtensions(extensions ...Extension) SessionOption {
	return func(o *SessionOptions) {
		o.Extensions = append([]Extension(nil), extensions...)
	}
}

// Sessionmaker is the configurable session factory.
type Sessionmaker struct {
	options SessionOptions
	lock    sync.RWMutex
}

// NewSessionmaker creates new session factory with provided options.
func NewSessionmaker(options ...SessionOption) *Sessionmaker {
	m := &Sessionmaker{}
	m.Configure(options...)
	return m
}

// Configure changes the factory options. Already created sessions are not affected.
func (m *Sessionmaker) Configure(options ...SessionOption) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, option := range options {
		option(&m.options)
	}
}

// Bind gets the engine the new sessions would be bound to.
func (m *Sessionmaker) Bind() Engine {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.options.Bind
}

// Extensions gets the configured session extensions.
func (m *Sessionmaker) Extensions() []Extension {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return append([]Extension(nil), m.options.Extensions...)
}

// New creates new session with the current factory options.
func (m *Sessionmaker) New() *Session {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return newSession(m.options.Bind, append([]Extension(nil), m.options.Extensions...))
}
