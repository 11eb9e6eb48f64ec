package dbhelper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/dbhelper/config"
	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/orm"
	"github.com/neuronlabs/dbhelper/orm/mockorm"
)

// TestIncludeSettings tests creating the engines from the settings.
func TestIncludeSettings(t *testing.T) {
	t.Run("DefaultAndNamed", func(t *testing.T) {
		h, driver := testHelper(t)
		err := h.IncludeMap(map[string]string{
			"sqlalchemy.url":        "sqlite://",
			"sqlahelper.other.url":  "sqlite://",
			"sqlahelper.other.echo": "yes",
		})
		require.NoError(t, err)
		assert.Len(t, driver.Opened, 2)

		defaultEngine, err := h.GetEngine()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", defaultEngine.URL().Dialect)
		assert.False(t, defaultEngine.Echo())
		assert.Same(t, defaultEngine, h.GetSession().Bind())
		assert.Same(t, defaultEngine, h.GetBase().Metadata().Bind())

		other, err := h.GetEngine("other")
		require.NoError(t, err)
		assert.NotSame(t, defaultEngine, other)
		assert.True(t, other.Echo())
	})

	t.Run("DefaultEngineOptions", func(t *testing.T) {
		h, driver := testHelper(t)
		settings := config.NewSettings(
			"sqlalchemy.url", "postgres://localhost/app",
			"sqlalchemy.echo", "on",
			"sqlalchemy.pool_size", "4",
		)
		require.NoError(t, h.IncludeSettings(settings))

		e, err := h.GetEngine()
		require.NoError(t, err)
		assert.True(t, e.Echo())
		require.Len(t, driver.Opened, 1)
		assert.Equal(t, 4, driver.Opened[0].Options.MaxOpenConns)
	})

	t.Run("EchoWithoutEngine", func(t *testing.T) {
		h, driver := testHelper(t)
		require.NoError(t, h.IncludeSettings(config.NewSettings("sqlahelper.ghost.echo", "yes")))
		assert.False(t, h.Engines().Has("ghost"))
		assert.Empty(t, driver.Opened)

		_, err := h.GetEngine("ghost")
		assert.True(t, errors.Is(err, ErrNotConfigured))
	})

	t.Run("EchoBeforeURL", func(t *testing.T) {
		h, _ := testHelper(t)
		settings := config.NewSettings(
			"sqlahelper.late.echo", "yes",
			"sqlahelper.late.url", "postgres://localhost/late",
		)
		require.NoError(t, h.IncludeSettings(settings))

		e, err := h.GetEngine("late")
		require.NoError(t, err)
		assert.False(t, e.Echo())
	})

	t.Run("InvalidBoolean", func(t *testing.T) {
		h, _ := testHelper(t)
		settings := config.NewSettings(
			"sqlahelper.x.url", "postgres://localhost/x",
			"sqlahelper.x.echo", "maybe",
		)
		err := h.IncludeSettings(settings)
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidBoolean))
	})

	t.Run("EngineErrors", func(t *testing.T) {
		h, driver := testHelper(t)
		openErr := errors.New("open failed")
		driver.OpenErr = openErr

		err := h.IncludeSettings(config.NewSettings("sqlahelper.x.url", "postgres://localhost/x"))
		assert.Equal(t, openErr, err)

		err = h.IncludeSettings(config.NewSettings("sqlalchemy.url", "postgres://localhost/x"))
		assert.Equal(t, openErr, err)
		_, err = h.GetEngine()
		assert.True(t, errors.Is(err, ErrNotConfigured))

		driver.OpenErr = nil
		err = h.IncludeSettings(config.NewSettings("sqlahelper.x.url", "::invalid"))
		assert.True(t, errors.Is(err, orm.ErrInvalidURL))
	})

	t.Run("NotMatching", func(t *testing.T) {
		h, driver := testHelper(t)
		settings := config.NewSettings(
			"sqlahelper.url", "postgres://localhost/x",
			"sqlahelper.a.b.url", "postgres://localhost/x",
			"other.x.url", "postgres://localhost/x",
			"sqlahelper.x.pool_size", "10",
		)
		require.NoError(t, h.IncludeSettings(settings))
		assert.Empty(t, driver.Opened)
		assert.Equal(t, []string{DefaultName}, h.Engines().Names())
	})

	t.Run("Options", func(t *testing.T) {
		drivers, _ := mockorm.NewDrivers()
		h := New(WithDrivers(drivers), WithDefaultURLKey("db.url"), WithEnginePrefix("db."), WithNamespace("engines"))
		settings := config.NewSettings(
			"db.url", "postgres://localhost/default",
			"engines.reports.url", "postgres://localhost/reports",
			"sqlahelper.ignored.url", "postgres://localhost/ignored",
		)
		require.NoError(t, h.IncludeSettings(settings))
		assert.Equal(t, []string{DefaultName, "reports"}, h.Engines().Names())
		e, err := h.GetEngine()
		require.NoError(t, err)
		assert.Equal(t, "default", e.URL().Database)
	})
}

// TestIncludeFile tests creating the engines from the properties file.
func TestIncludeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.properties")
	content := "sqlalchemy.url = postgres://localhost/app\n" +
		"sqlahelper.other.url = mysql://localhost/other\n" +
		"sqlahelper.other.echo = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	h, _ := testHelper(t)
	require.NoError(t, h.IncludeFile(path))

	e, err := h.GetEngine("other")
	require.NoError(t, err)
	assert.True(t, e.Echo())
	assert.Equal(t, "mysql", e.URL().Dialect)

	_, err = h.GetEngine()
	require.NoError(t, err)
}
