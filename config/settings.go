package config

import (
	"strings"
)

// Settings is the ordered flat mapping between the setting keys and their values.
// The order is the order in which the keys were first set.
type Settings struct {
	keys   []string
	values map[string]string
}

// NewSettings creates new settings from the 'pairs' of key and value, i.e.:
//	NewSettings("sqlalchemy.url", "sqlite://", "sqlahelper.other.url", "sqlite://")
// The key without the value is set to an empty string.
func NewSettings(pairs ...string) *Settings {
	s := &Settings{values: map[string]string{}}
	for i := 0; i < len(pairs); i += 2 {
		var value string
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		s.Set(pairs[i], value)
	}
	return s
}

// SettingsFromMap creates new settings from the map 'm'. As the map has no order the keys are sorted
// the same way as the flattened settings files, with an 'url' key preceding its siblings.
func SettingsFromMap(m map[string]string) *Settings {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortKeys(keys)

	s := &Settings{values: make(map[string]string, len(m))}
	for _, k := range keys {
		s.Set(k, m[k])
	}
	return s
}

// Set sets the 'value' for the 'key'. A key that is already set keeps its position.
func (s *Settings) Set(key, value string) {
	if s.values == nil {
		s.values = map[string]string{}
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get gets the value stored for the 'key'.
func (s *Settings) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has checks if the 'key' is set.
func (s *Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys gets the ordered setting keys.
func (s *Settings) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len gets the number of settings.
func (s *Settings) Len() int {
	return len(s.keys)
}

// WithPrefix gets the settings which keys starts with the 'prefix'. The prefix is trimmed from the keys.
func (s *Settings) WithPrefix(prefix string) map[string]string {
	m := map[string]string{}
	for _, k := range s.keys {
		if strings.HasPrefix(k, prefix) {
			m[strings.TrimPrefix(k, prefix)] = s.values[k]
		}
	}
	return m
}
