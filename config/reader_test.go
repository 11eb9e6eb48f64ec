package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/dbhelper/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestReadSettings tests reading the settings files.
func TestReadSettings(t *testing.T) {
	t.Run("Properties", func(t *testing.T) {
		path := writeFile(t, "app.properties", `sqlalchemy.url = sqlite://
sqlahelper.other.echo = yes
sqlahelper.other.url = sqlite:///other.db
`)
		s, err := ReadSettings(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"sqlalchemy.url", "sqlahelper.other.echo", "sqlahelper.other.url"}, s.Keys())
		v, _ := s.Get("sqlahelper.other.url")
		assert.Equal(t, "sqlite:///other.db", v)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeFile(t, "app.yaml", `sqlalchemy:
  url: "sqlite://"
sqlahelper:
  other:
    echo: "yes"
    url: "sqlite:///other.db"
`)
		s, err := ReadSettings(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"sqlahelper.other.url", "sqlahelper.other.echo", "sqlalchemy.url"}, s.Keys())
		v, _ := s.Get("sqlahelper.other.echo")
		assert.Equal(t, "yes", v)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		path := writeFile(t, "env.properties", "sqlalchemy.url = sqlite://\n")
		t.Setenv("DBHELPER_SQLALCHEMY_URL", "postgres://db.local/app")

		s, err := ReadSettings(path)
		require.NoError(t, err)
		v, _ := s.Get("sqlalchemy.url")
		assert.Equal(t, "postgres://db.local/app", v)
	})

	t.Run("Defaults", func(t *testing.T) {
		path := writeFile(t, "defaults.properties", "sqlalchemy.url = sqlite://\n")
		s, err := ReadSettings(path, WithDefault("sqlalchemy.echo", "false"), WithDefault("sqlalchemy.url", "ignored"))
		require.NoError(t, err)

		assert.Equal(t, []string{"sqlalchemy.url", "sqlalchemy.echo"}, s.Keys())
		v, _ := s.Get("sqlalchemy.url")
		assert.Equal(t, "sqlite://", v)
	})

	t.Run("Ini", func(t *testing.T) {
		path := writeFile(t, "development.ini", `; application settings
[app:main]
use = egg:app
pyramid.includes =
    pyramid_tm
    pyramid_debugtoolbar
sqlalchemy.url = sqlite://
sqlahelper.other.url = sqlite:///other.db
sqlahelper.other.echo = yes

# server settings
[server:main]
port = 6543
`)
		s, err := ReadSettings(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"use", "pyramid.includes", "sqlalchemy.url", "sqlahelper.other.url", "sqlahelper.other.echo", "port"}, s.Keys())
		v, _ := s.Get("sqlalchemy.url")
		assert.Equal(t, "sqlite://", v)
		v, _ = s.Get("pyramid.includes")
		assert.Equal(t, "pyramid_tm pyramid_debugtoolbar", v)
		v, _ = s.Get("port")
		assert.Equal(t, "6543", v)
	})

	t.Run("IniMissing", func(t *testing.T) {
		_, err := ReadSettings(filepath.Join(t.TempDir(), "missing.ini"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSettings))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ReadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSettings))
	})
}

// TestIniToProperties tests rewriting the ini content into the properties format.
func TestIniToProperties(t *testing.T) {
	content := "[app:main]\r\n; comment\r\nkey = value\r\n  continued\r\n[other]\r\nname: x\r\n"
	assert.Equal(t, "\nkey = value continued\n\nname: x\n", iniToProperties(content))
}
