package orm

import (
	"strconv"
	"time"

	"github.com/neuronlabs/dbhelper/config"
	"github.com/neuronlabs/dbhelper/errors"
)

// Engine setting keys read by EngineFromConfig, following the prefix.
const (
	SettingURL             = "url"
	SettingEcho            = "echo"
	SettingMaxOpenConns    = "max_open_conns"
	SettingPoolSize        = "pool_size"
	SettingMaxIdleConns    = "max_idle_conns"
	SettingConnMaxLifetime = "conn_max_lifetime"
	SettingPoolRecycle     = "pool_recycle"
)

// EngineFromConfig creates an engine from the 'settings' which keys starts with the 'prefix', i.e. for
// the 'sqlalchemy.' prefix:
//	sqlalchemy.url = postgres://localhost/app
//	sqlalchemy.echo = true
//	sqlalchemy.max_open_conns = 10         (alias: pool_size)
//	sqlalchemy.max_idle_conns = 5
//	sqlalchemy.conn_max_lifetime = 30m     (alias: pool_recycle, seconds)
// The engine is created with the driver from the 'drivers' container.
func EngineFromConfig(drivers *Drivers, settings *config.Settings, prefix string) (Engine, error) {
	values := settings.WithPrefix(prefix)
	rawURL, ok := values[SettingURL]
	if !ok {
		return nil, errors.WrapDetf(ErrInvalidOptions, "no '%s%s' setting", prefix, SettingURL)
	}

	var options []EngineOption
	if v, ok := values[SettingEcho]; ok {
		echo, err := config.AsBool(v)
		if err != nil {
			return nil, err
		}
		options = append(options, WithEcho(echo))
	}
	for _, key := range []string{SettingPoolSize, SettingMaxOpenConns} {
		if v, ok := values[key]; ok {
			n, err := parseInt(prefix+key, v)
			if err != nil {
				return nil, err
			}
			options = append(options, WithMaxOpenConns(n))
		}
	}
	if v, ok := values[SettingMaxIdleConns]; ok {
		n, err := parseInt(prefix+SettingMaxIdleConns, v)
		if err != nil {
			return nil, err
		}
		options = append(options, WithMaxIdleConns(n))
	}
	for _, key := range []string{SettingPoolRecycle, SettingConnMaxLifetime} {
		if v, ok := values[key]; ok {
			d, err := parseDuration(prefix+key, v)
			if err != nil {
				return nil, err
			}
			options = append(options, WithConnMaxLifetime(d))
		}
	}
	return drivers.Create(rawURL, options...)
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.WrapDetf(config.ErrInvalidValue, "setting: '%s' is not an integer: '%s'", key, value)
	}
	return n, nil
}

// parseDuration parses the duration string or the integer number of seconds.
func parseDuration(key, value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapDetf(config.ErrInvalidValue, "setting: '%s' is not a duration: '%s'", key, value)
	}
	return d, nil
}
