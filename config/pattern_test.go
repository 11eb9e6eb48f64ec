package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestKeyPattern tests the engine key pattern matching.
func TestKeyPattern(t *testing.T) {
	p := NewKeyPattern("sqlahelper")
	assert.Equal(t, "sqlahelper", p.Namespace())

	cases := []struct {
		key    string
		name   string
		option string
		ok     bool
	}{
		{"sqlahelper.other.url", "other", OptionURL, true},
		{"sqlahelper.other_2.echo", "other_2", OptionEcho, true},
		{"sqlalchemy.url", "", "", false},
		{"sqlahelper.url", "", "", false},
		{"sqlahelper.a.b.url", "", "", false},
		{"sqlahelper.other.pool_size", "", "", false},
		{"sqlahelper.other.url_extra", "", "", false},
		{"xsqlahelper.other.url", "", "", false},
		{"sqlahelperXother.url", "", "", false},
	}
	for _, c := range cases {
		name, option, ok := p.Match(c.key)
		assert.Equal(t, c.ok, ok, c.key)
		assert.Equal(t, c.name, name, c.key)
		assert.Equal(t, c.option, option, c.key)
	}
}
