package dbhelper

import (
	"sync"

	"github.com/neuronlabs/dbhelper/config"
	"github.com/neuronlabs/dbhelper/orm"
)

var (
	defaultHelper *Helper
	defaultOnce   sync.Once
)

// Default gets the process default helper.
func Default() *Helper {
	defaultOnce.Do(func() {
		defaultHelper = New()
	})
	return defaultHelper
}

// Reset resets the default helper.
func Reset() {
	Default().Reset()
}

// SetDefaultEngine sets the default engine of the default helper.
func SetDefaultEngine(e orm.Engine) {
	Default().SetDefaultEngine(e)
}

// AddEngine adds the engine to the default helper.
func AddEngine(e orm.Engine, name ...string) {
	Default().AddEngine(e, name...)
}

// GetEngine gets the engine from the default helper.
func GetEngine(name ...string) (orm.Engine, error) {
	return Default().GetEngine(name...)
}

// GetSession gets the default scoped session of the default helper.
func GetSession() *orm.ScopedSession {
	return Default().GetSession()
}

// GetBase gets the default declarative base of the default helper.
func GetBase() *orm.DeclarativeBase {
	return Default().GetBase()
}

// SetBase sets the default declarative base of the default helper.
func SetBase(b *orm.DeclarativeBase) {
	Default().SetBase(b)
}

// IncludeSettings creates the engines from the 'settings' in the default helper.
func IncludeSettings(settings *config.Settings) error {
	return Default().IncludeSettings(settings)
}
