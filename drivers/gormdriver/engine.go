package gormdriver

import (
	"context"
	"sync"

	"github.com/jinzhu/gorm"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
)

var (
	_ orm.Engine = &Engine{}
	_ orm.Tx     = &Tx{}
)

// Engine is the orm.Engine over the gorm database.
type Engine struct {
	url     *orm.URL
	dialect string
	dsn     string
	options orm.EngineOptions

	db     *gorm.DB
	echo   bool
	closed bool
	lock   sync.Mutex
}

// DriverName implements orm.Engine interface.
func (e *Engine) DriverName() string {
	return DriverName
}

// URL implements orm.Engine interface.
func (e *Engine) URL() *orm.URL {
	return e.url
}

// Dialect gets the gorm dialect name.
func (e *Engine) Dialect() string {
	return e.dialect
}

// Echo implements orm.Engine interface.
func (e *Engine) Echo() bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.echo
}

// SetEcho implements orm.Engine interface. If the engine is already connected the gorm log mode is changed.
func (e *Engine) SetEcho(echo bool) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.echo = echo
	if e.db != nil {
		e.db.LogMode(echo)
	}
}

// DB gets the gorm database, connecting if needed.
func (e *Engine) DB() (*gorm.DB, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.connect()
}

// Begin implements orm.Engine interface.
func (e *Engine) Begin(ctx context.Context) (orm.Tx, error) {
	db, err := e.DB()
	if err != nil {
		return nil, err
	}
	tx := db.BeginTx(ctx, nil)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &Tx{db: tx}, nil
}

// Ping implements orm.Engine interface.
func (e *Engine) Ping(ctx context.Context) error {
	db, err := e.DB()
	if err != nil {
		return err
	}
	return db.DB().PingContext(ctx)
}

// Close implements orm.Engine interface. Closing not connected engine only prevents it from connecting.
func (e *Engine) Close() error {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	if e.db == nil {
		return nil
	}
	log.Debugf("Closing gorm engine: '%s'", e.url.Redacted())
	return e.db.Close()
}

func (e *Engine) connect() (*gorm.DB, error) {
	if e.closed {
		return nil, errors.WrapDetf(orm.ErrEngineClosed, "engine: '%s' is closed", e.url.Redacted())
	}
	if e.db != nil {
		return e.db, nil
	}

	log.Debugf("Connecting gorm engine: '%s'", e.url.Redacted())
	db, err := gorm.Open(e.dialect, e.dsn)
	if err != nil {
		return nil, err
	}
	db.SetLogger(queryLogger{})
	db.LogMode(e.echo)

	sqlDB := db.DB()
	if e.options.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(e.options.MaxOpenConns)
	}
	if e.options.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(e.options.MaxIdleConns)
	}
	if e.options.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(e.options.ConnMaxLifetime)
	}
	e.db = db
	return db, nil
}

// Tx is the gorm transaction.
type Tx struct {
	db *gorm.DB
}

// DB gets the gorm transaction database.
func (t *Tx) DB() *gorm.DB {
	return t.db
}

// Commit implements orm.Tx interface.
func (t *Tx) Commit() error {
	return t.db.Commit().Error
}

// Rollback implements orm.Tx interface.
func (t *Tx) Rollback() error {
	return t.db.Rollback().Error
}

// queryLogger prints the gorm logs with the package logger.
type queryLogger struct{}

// Print implements gorm logger interface.
func (queryLogger) Print(values ...interface{}) {
	log.Info(gorm.LogFormatter(values...)...)
}
