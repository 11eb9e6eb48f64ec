package dbhelper

import (
	"github.com/neuronlabs/dbhelper/config"
	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
	"github.com/neuronlabs/dbhelper/registry"
	"github.com/neuronlabs/dbhelper/txn"
)

// Helper is the registry of the engines, declarative bases and scoped sessions.
// Each registry method is safe for concurrent use, but the operations that changes more than one registry,
// like SetDefaultEngine or Reset, are not atomic. The helper should be configured at the application start.
type Helper struct {
	options *Options
	pattern *config.KeyPattern

	engines  *registry.Container[orm.Engine]
	bases    *registry.Container[*orm.DeclarativeBase]
	sessions *registry.Container[*orm.ScopedSession]
}

// New creates new helper with the default slots initialized.
func New(options ...Option) *Helper {
	o := defaultOptions()
	for _, option := range options {
		option(o)
	}
	if o.Drivers == nil {
		o.Drivers = orm.GlobalDrivers()
	}
	if o.TransactionManager == nil {
		o.TransactionManager = txn.NewManager()
	}
	h := &Helper{
		options:  o,
		pattern:  config.NewKeyPattern(o.Namespace),
		engines:  registry.New[orm.Engine]("engine"),
		bases:    registry.New[*orm.DeclarativeBase]("base"),
		sessions: registry.New[*orm.ScopedSession]("session"),
	}
	h.Reset()
	return h
}

// Options gets the helper options.
func (h *Helper) Options() *Options {
	return h.options
}

// Drivers gets the drivers container used to create the engines.
func (h *Helper) Drivers() *orm.Drivers {
	return h.options.Drivers
}

// TransactionManager gets the transaction manager the default sessions joins.
func (h *Helper) TransactionManager() *txn.Manager {
	return h.options.TransactionManager
}

// Engines gets the engines registry.
func (h *Helper) Engines() *registry.Container[orm.Engine] {
	return h.engines
}

// Bases gets the declarative bases registry.
func (h *Helper) Bases() *registry.Container[*orm.DeclarativeBase] {
	return h.bases
}

// Sessions gets the scoped sessions registry.
func (h *Helper) Sessions() *registry.Container[*orm.ScopedSession] {
	return h.sessions
}

// Reset clears all the registries and initializes the default slots: the default engine is not set,
// the default base is new and unbound and the default session is new scoped session with the transaction
// extension, bound to no engine. The engines and sessions retrieved before are neither closed nor affected.
func (h *Helper) Reset() {
	h.engines.Clear()
	h.bases.Clear()
	h.sessions.Clear()

	h.engines.Set(DefaultName, nil)
	h.bases.Set(DefaultName, orm.NewDeclarativeBase())
	h.sessions.Set(DefaultName, orm.NewScopedSession(
		orm.NewSessionmaker(orm.WithExtensions(txn.NewExtension(h.options.TransactionManager))),
	))
	log.Debug2f("Helper reset")
}

// SetDefaultEngine sets the engine 'e' as the default one, binds the default base metadata to it and reconfigures
// the default session factory. The default session registered sessions are discarded, but the sessions already
// in use keeps their bind. The discarded sessions are not closed, the code that holds them needs to close them.
func (h *Helper) SetDefaultEngine(e orm.Engine) {
	h.engines.Set(DefaultName, e)
	if base, ok := h.bases.Lookup(DefaultName); ok && base != nil {
		base.Metadata().SetBind(e)
	}
	if scoped, ok := h.sessions.Lookup(DefaultName); ok && scoped != nil {
		scoped.Remove()
		scoped.Configure(orm.WithBind(e))
	}
	if e != nil {
		log.Debugf("Default engine set to: '%s'", e.URL().Redacted())
	}
}

// AddEngine adds the engine 'e' under the 'name'. If the name is not provided or it is "default"
// the engine is set as default with the SetDefaultEngine.
func (h *Helper) AddEngine(e orm.Engine, name ...string) {
	n := engineName(name)
	if n == DefaultName {
		h.SetDefaultEngine(e)
		return
	}
	h.engines.Set(n, e)
	log.Debugf("Engine: '%s' added", n)
}

// GetEngine gets the engine with the 'name' or the default one if the name is not provided.
// If the engine was not configured the function returns an error of ErrNotConfigured class.
func (h *Helper) GetEngine(name ...string) (orm.Engine, error) {
	n := engineName(name)
	e, ok := h.engines.Lookup(n)
	if !ok || e == nil {
		return nil, errors.WrapDetf(ErrNotConfigured, "no engine '%s' was configured", n)
	}
	return e, nil
}

// GetSession gets the default scoped session.
func (h *Helper) GetSession() *orm.ScopedSession {
	s, _ := h.sessions.Lookup(DefaultName)
	return s
}

// GetBase gets the default declarative base.
func (h *Helper) GetBase() *orm.DeclarativeBase {
	b, _ := h.bases.Lookup(DefaultName)
	return b
}

// SetBase sets the default declarative base. The base is not bound to the default engine,
// thus it should be set before any other code gets the default base.
func (h *Helper) SetBase(b *orm.DeclarativeBase) {
	h.bases.Set(DefaultName, b)
}

func engineName(name []string) string {
	if len(name) == 0 || name[0] == "" {
		return DefaultName
	}
	return name[0]
}
