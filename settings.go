package dbhelper

import (
	"github.com/neuronlabs/dbhelper/config"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
)

// IncludeSettings creates the engines from the 'settings'. If the default url key is present the default
// engine is created from the settings with the engine prefix. Then each key matching the '<namespace>.<name>.url'
// creates the engine stored under the 'name', and each '<namespace>.<name>.echo' sets the echo flag of
// the engine registered with 'name'. The keys are processed in the settings order - an echo key preceding
// its engine url is skipped.
// The engine creation errors are returned unchanged.
func (h *Helper) IncludeSettings(settings *config.Settings) error {
	if settings.Has(h.options.DefaultURLKey) {
		e, err := orm.EngineFromConfig(h.options.Drivers, settings, h.options.EnginePrefix)
		if err != nil {
			return err
		}
		h.SetDefaultEngine(e)
	}

	for _, key := range settings.Keys() {
		if key == h.options.DefaultURLKey {
			continue
		}
		name, option, ok := h.pattern.Match(key)
		if !ok {
			continue
		}
		value, _ := settings.Get(key)
		switch option {
		case config.OptionURL:
			e, err := h.options.Drivers.Create(value)
			if err != nil {
				return err
			}
			h.engines.Set(name, e)
			log.Debugf("Engine: '%s' created from setting: '%s'", name, key)
		case config.OptionEcho:
			e, ok := h.engines.Lookup(name)
			if !ok || e == nil {
				log.Debug3f("Skipping setting: '%s' - no engine: '%s' registered", key, name)
				continue
			}
			echo, err := config.AsBool(value)
			if err != nil {
				return err
			}
			e.SetEcho(echo)
		}
	}
	return nil
}

// IncludeMap creates the engines from the settings map. As the map is not ordered its keys are sorted.
func (h *Helper) IncludeMap(m map[string]string) error {
	return h.IncludeSettings(config.SettingsFromMap(m))
}

// IncludeFile reads the settings file at 'path' and creates the engines from it.
func (h *Helper) IncludeFile(path string, options ...config.ReadOption) error {
	settings, err := config.ReadSettings(path, options...)
	if err != nil {
		return err
	}
	return h.IncludeSettings(settings)
}
