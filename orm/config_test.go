package orm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/dbhelper/config"
	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/orm"
	"github.com/neuronlabs/dbhelper/orm/mockorm"
)

// TestEngineFromConfig tests creating the engines from the prefixed settings.
func TestEngineFromConfig(t *testing.T) {
	drivers, driver := mockorm.NewDrivers()

	t.Run("Valid", func(t *testing.T) {
		settings := config.NewSettings(
			"sqlalchemy.url", "postgres://localhost/app",
			"sqlalchemy.echo", "yes",
			"sqlalchemy.pool_size", "5",
			"sqlalchemy.max_idle_conns", "2",
			"sqlalchemy.pool_recycle", "3600",
			"other.url", "mysql://other/db",
		)
		e, err := orm.EngineFromConfig(drivers, settings, "sqlalchemy.")
		require.NoError(t, err)

		assert.True(t, e.Echo())
		assert.Equal(t, "postgres://localhost/app", e.URL().String())
		opened := driver.Opened[len(driver.Opened)-1]
		assert.Equal(t, 5, opened.Options.MaxOpenConns)
		assert.Equal(t, 2, opened.Options.MaxIdleConns)
		assert.Equal(t, time.Hour, opened.Options.ConnMaxLifetime)
	})

	t.Run("DurationString", func(t *testing.T) {
		settings := config.NewSettings(
			"db.url", "postgres://localhost/app",
			"db.conn_max_lifetime", "30m",
		)
		_, err := orm.EngineFromConfig(drivers, settings, "db.")
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, driver.Opened[len(driver.Opened)-1].Options.ConnMaxLifetime)
	})

	t.Run("NoURL", func(t *testing.T) {
		_, err := orm.EngineFromConfig(drivers, config.NewSettings("sqlalchemy.echo", "true"), "sqlalchemy.")
		require.Error(t, err)
		assert.True(t, errors.Is(err, orm.ErrInvalidOptions))
	})

	t.Run("InvalidEcho", func(t *testing.T) {
		settings := config.NewSettings("sqlalchemy.url", "postgres://localhost/app", "sqlalchemy.echo", "maybe")
		_, err := orm.EngineFromConfig(drivers, settings, "sqlalchemy.")
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidBoolean))
	})

	t.Run("InvalidNumber", func(t *testing.T) {
		settings := config.NewSettings("sqlalchemy.url", "postgres://localhost/app", "sqlalchemy.max_open_conns", "many")
		_, err := orm.EngineFromConfig(drivers, settings, "sqlalchemy.")
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidValue))
	})
}
