package sqlxdriver

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
)

var (
	_ orm.Engine = &Engine{}
	_ orm.Tx     = &Tx{}
)

// Engine is the orm.Engine over the sqlx database.
type Engine struct {
	url        *orm.URL
	driverName string
	dsn        string
	options    orm.EngineOptions

	db     *sqlx.DB
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

// SQLDriver gets the database/sql driver name used by the engine.
func (e *Engine) SQLDriver() string {
	return e.driverName
}

// Echo implements orm.Engine interface.
func (e *Engine) Echo() bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.echo
}

// SetEcho implements orm.Engine interface.
func (e *Engine) SetEcho(echo bool) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.echo = echo
}

// DB gets the sqlx database. The sqlx.Open doesn't connect to the database.
func (e *Engine) DB() (*sqlx.DB, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.closed {
		return nil, errors.WrapDetf(orm.ErrEngineClosed, "engine: '%s' is closed", e.url.Redacted())
	}
	if e.db != nil {
		return e.db, nil
	}
	db, err := sqlx.Open(e.driverName, e.dsn)
	if err != nil {
		return nil, err
	}
	if e.options.MaxOpenConns > 0 {
		db.SetMaxOpenConns(e.options.MaxOpenConns)
	}
	if e.options.MaxIdleConns > 0 {
		db.SetMaxIdleConns(e.options.MaxIdleConns)
	}
	if e.options.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(e.options.ConnMaxLifetime)
	}
	e.db = db
	return db, nil
}

// Begin implements orm.Engine interface.
func (e *Engine) Begin(ctx context.Context) (orm.Tx, error) {
	db, err := e.DB()
	if err != nil {
		return nil, err
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	t := &Tx{tx: tx, engine: e}
	t.echof("BEGIN")
	return t, nil
}

// Ping implements orm.Engine interface.
func (e *Engine) Ping(ctx context.Context) error {
	db, err := e.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Close implements orm.Engine interface.
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
	log.Debugf("Closing sqlx engine: '%s'", e.url.Redacted())
	return e.db.Close()
}

// Tx is the sqlx transaction.
type Tx struct {
	tx     *sqlx.Tx
	engine *Engine
}

// Tx gets the sqlx transaction.
func (t *Tx) Tx() *sqlx.Tx {
	return t.tx
}

// Commit implements orm.Tx interface.
func (t *Tx) Commit() error {
	t.echof("COMMIT")
	return t.tx.Commit()
}

// Rollback implements orm.Tx interface.
func (t *Tx) Rollback() error {
	t.echof("ROLLBACK")
	return t.tx.Rollback()
}

func (t *Tx) echof(statement string) {
	if t.engine.Echo() {
		log.Infof("[%s] %s", t.engine.url.Redacted(), statement)
	}
}
