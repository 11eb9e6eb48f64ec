package orm

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/neuronlabs/dbhelper/log"
)

type scopeKeyCtx struct{}

var scopeKey = &scopeKeyCtx{}

// WithScope creates new context with a unique session scope. Scoped sessions return the same session
// for all the contexts derived from the result.
func WithScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey, uuid.New().String())
}

// ScopeFunc is a function that gets the session scope key from the context. If the context has no scope
// it returns false.
type ScopeFunc func(ctx context.Context) (string, bool)

// ContextScope is the default scope function. It gets the scope set by the WithScope function.
func ContextScope(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	scope, ok := ctx.Value(scopeKey).(string)
	return scope, ok
}

// ScopedOption is the option function for the ScopedSession.
type ScopedOption func(s *ScopedSession)

// WithScopeFunc sets the scope function of the scoped session.
func WithScopeFunc(f ScopeFunc) ScopedOption {
	return func(s *ScopedSession) {
		s.scopeFunc = f
	}
}

// ScopedSession is the contextual session registry. It hands out a single session per scope,
// created by its session factory.
type ScopedSession struct {
	factory   *Sessionmaker
	scopeFunc ScopeFunc
	sessions  map[string]*Session
	lock      sync.Mutex
}

// NewScopedSession creates new scoped session over the 'factory'. A nil factory is replaced
// with an unconfigured Sessionmaker.
func NewScopedSession(factory *Sessionmaker, options ...ScopedOption) *ScopedSession {
	if factory == nil {
		factory = NewSessionmaker()
	}
	s := &ScopedSession{
		factory:   factory,
		scopeFunc: ContextScope,
		sessions:  map[string]*Session{},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Factory gets the session factory.
func (s *ScopedSession) Factory() *Sessionmaker {
	return s.factory
}

// Bind gets the engine the factory binds new sessions to.
func (s *ScopedSession) Bind() Engine {
	return s.factory.Bind()
}

// Session gets the session for the context scope. If the scope has no session yet, or it was closed,
// a new one is created. A context without a scope gets a new session on each call, which is not registered
// in the scoped session - the caller is responsible for closing it.
func (s *ScopedSession) Session(ctx context.Context) *Session {
	scope, ok := s.scopeFunc(ctx)
	if !ok {
		session := s.factory.New()
		log.Debug3f("Scoped session: created unscoped session: '%s'", session.ID)
		return session
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	session, ok := s.sessions[scope]
	if !ok || session.State() == SessionClosed {
		session = s.factory.New()
		s.sessions[scope] = session
		log.Debug3f("Scoped session: created session: '%s' for scope: '%s'", session.ID, scope)
	}
	return session
}

// Has checks if there is a session registered for the context scope.
func (s *ScopedSession) Has(ctx context.Context) bool {
	scope, ok := s.scopeFunc(ctx)
	if !ok {
		return false
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok = s.sessions[scope]
	return ok
}

// Len gets the number of registered sessions.
func (s *ScopedSession) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.sessions)
}

// Configure changes the options of the session factory. The sessions already registered
// are not affected.
func (s *ScopedSession) Configure(options ...SessionOption) {
	if n := s.Len(); n > 0 {
		log.Warningf("Configuring scoped session with %d registered sessions. They would not be affected.", n)
	}
	s.factory.Configure(options...)
}

// Remove discards all registered sessions. The sessions are not closed, thus the code that
// still holds them is not affected and is responsible for closing them.
func (s *ScopedSession) Remove() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.sessions = map[string]*Session{}
}

// Close closes and discards the session of the context scope. A context without a scope has no registered
// session, thus the function does nothing.
func (s *ScopedSession) Close(ctx context.Context) error {
	scope, ok := s.scopeFunc(ctx)
	if !ok {
		return nil
	}
	s.lock.Lock()
	session, ok := s.sessions[scope]
	delete(s.sessions, scope)
	s.lock.Unlock()

	if !ok {
		return nil
	}
	return session.Close(ctx)
}
