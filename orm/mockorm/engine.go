package mockorm

import (
	"context"
	"sync"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/orm"
)

var (
	_ orm.Engine = &Engine{}
	_ orm.Tx     = &Tx{}
)

// Engine is the mock engine. The Err fields are returned by the matching functions.
type Engine struct {
	Driver    string
	EngineURL *orm.URL
	Options   orm.EngineOptions

	BeginErr    error
	PingErr     error
	CloseErr    error
	CommitErr   error
	RollbackErr error

	Began  int
	Pinged int
	Closed bool

	Transactions []*Tx

	lock sync.Mutex
}

// New creates the mock engine for the 'rawURL'. It panics if the url is not valid.
func New(rawURL string) *Engine {
	u, err := orm.ParseURL(rawURL)
	if err != nil {
		panic(err)
	}
	return &Engine{Driver: DriverName, EngineURL: u}
}

// DriverName implements orm.Engine interface.
func (e *Engine) DriverName() string {
	return e.Driver
}

// URL implements orm.Engine interface.
func (e *Engine) URL() *orm.URL {
	return e.EngineURL
}

// Echo implements orm.Engine interface.
func (e *Engine) Echo() bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.Options.Echo
}

// SetEcho implements orm.Engine interface.
func (e *Engine) SetEcho(echo bool) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.Options.Echo = echo
}

// Begin implements orm.Engine interface.
func (e *Engine) Begin(ctx context.Context) (orm.Tx, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.Closed {
		return nil, errors.WrapDet(orm.ErrEngineClosed, "mock engine closed")
	}
	if e.BeginErr != nil {
		return nil, e.BeginErr
	}
	e.Began++
	tx := &Tx{CommitErr: e.CommitErr, RollbackErr: e.RollbackErr}
	e.Transactions = append(e.Transactions, tx)
	return tx, nil
}

// Ping implements orm.Engine interface.
func (e *Engine) Ping(ctx context.Context) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.Pinged++
	return e.PingErr
}

// Close implements orm.Engine interface.
func (e *Engine) Close() error {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.Closed = true
	return e.CloseErr
}

// LastTx gets the most recently began transaction.
func (e *Engine) LastTx() *Tx {
	e.lock.Lock()
	defer e.lock.Unlock()
	if len(e.Transactions) == 0 {
		return nil
	}
	return e.Transactions[len(e.Transactions)-1]
}

// Tx is the mock transaction.
type Tx struct {
	CommitErr   error
	RollbackErr error

	Committed  bool
	RolledBack bool
}

// Commit implements orm.Tx interface.
func (t *Tx) Commit() error {
	if t.CommitErr != nil {
		return t.CommitErr
	}
	t.Committed = true
	return nil
}

// Rollback implements orm.Tx interface.
func (t *Tx) Rollback() error {
	if t.RollbackErr != nil {
		return t.RollbackErr
	}
	t.RolledBack = true
	return nil
}
