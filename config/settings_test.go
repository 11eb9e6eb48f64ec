package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSettings tests the ordered settings.
func TestSettings(t *testing.T) {
	s := NewSettings("sqlalchemy.url", "sqlite://", "sqlahelper.other.url", "sqlite://", "sqlahelper.other.echo")
	assert.Equal(t, []string{"sqlalchemy.url", "sqlahelper.other.url", "sqlahelper.other.echo"}, s.Keys())
	assert.Equal(t, 3, s.Len())

	v, ok := s.Get("sqlahelper.other.echo")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	s.Set("sqlalchemy.url", "postgres://localhost/db")
	assert.Equal(t, "sqlalchemy.url", s.Keys()[0])
	v, _ = s.Get("sqlalchemy.url")
	assert.Equal(t, "postgres://localhost/db", v)

	assert.False(t, s.Has("sqlalchemy.echo"))

	t.Run("WithPrefix", func(t *testing.T) {
		s.Set("sqlalchemy.echo", "yes")
		assert.Equal(t, map[string]string{"url": "postgres://localhost/db", "echo": "yes"}, s.WithPrefix("sqlalchemy."))
	})

	t.Run("FromMap", func(t *testing.T) {
		m := SettingsFromMap(map[string]string{"b": "2", "a": "1", "c": "3"})
		assert.Equal(t, []string{"a", "b", "c"}, m.Keys())

		m = SettingsFromMap(map[string]string{"ns.x.echo": "yes", "ns.x.url": "sqlite://", "ns.a.url": "sqlite://"})
		assert.Equal(t, []string{"ns.a.url", "ns.x.url", "ns.x.echo"}, m.Keys())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var z Settings
		z.Set("key", "value")
		assert.True(t, z.Has("key"))
	})
}
