package txn

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
)

type txKeyCtx struct{}

var txKey = &txKeyCtx{}

// NewContext creates new context with the transaction 'tx'.
func NewContext(ctx context.Context, tx *Transaction) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// FromContext gets the transaction stored in the context.
func FromContext(ctx context.Context) (*Transaction, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txKey).(*Transaction)
	return tx, ok
}

// Manager begins the transactions and keeps track of the active ones.
type Manager struct {
	active map[uuid.UUID]*Transaction
	lock   sync.Mutex
}

// NewManager creates new transaction manager.
func NewManager() *Manager {
	return &Manager{active: map[uuid.UUID]*Transaction{}}
}

// Begin starts new transaction and stores it in the resulting context.
func (m *Manager) Begin(ctx context.Context) (context.Context, *Transaction) {
	tx := &Transaction{ID: uuid.New(), manager: m, state: StateBegin}
	m.lock.Lock()
	m.active[tx.ID] = tx
	m.lock.Unlock()
	log.Debug2f("Begin transaction: '%s'", tx.ID)
	return NewContext(ctx, tx), tx
}

// Current gets the in-progress context transaction began by the manager.
func (m *Manager) Current(ctx context.Context) (*Transaction, error) {
	tx, ok := FromContext(ctx)
	if !ok || tx.manager != m {
		return nil, errors.WrapDet(ErrNoTransaction, "no transaction in the context")
	}
	if tx.State().Done() {
		return nil, errors.WrapDetf(ErrTxDone, "transaction: '%s' is already done", tx.ID)
	}
	return tx, nil
}

// Active gets the number of the transactions that are not finished yet.
func (m *Manager) Active() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.active)
}

func (m *Manager) remove(tx *Transaction) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.active, tx.ID)
}

// TxFunc is the function executed by the RunInTransaction.
type TxFunc func(ctx context.Context, tx *Transaction) error

// RunInTransaction runs the function 'fn' within a transaction. If the function returns an error or panics
// the transaction is aborted, otherwise it is committed. If the context already has a transaction of the manager 'm'
// the function is executed within it.
func RunInTransaction(ctx context.Context, m *Manager, fn TxFunc) (err error) {
	if tx, er := m.Current(ctx); er == nil {
		return fn(ctx, tx)
	}

	ctx, tx := m.Begin(ctx)
	defer func() {
		p := recover()
		switch {
		case p != nil:
			// A panic occurred, abort and panic again.
			if er := tx.Abort(ctx); er != nil {
				log.Errorf("Aborting transaction: '%s' on recover failed: %v", tx.ID, er)
			}
			panic(p)
		case err != nil:
			if er := tx.Abort(ctx); er != nil {
				log.Errorf("Aborting transaction: '%s' failed: %v", tx.ID, er)
			}
		default:
			err = tx.Commit(ctx)
		}
	}()
	err = fn(ctx, tx)
	return err
}
