package txn

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
)

// DataManager is the resource that takes part in the transaction.
type DataManager interface {
	// Commit commits the resource changes done within the transaction 'tx'.
	Commit(ctx context.Context, tx *Transaction) error
	// Abort discards the resource changes done within the transaction 'tx'.
	Abort(ctx context.Context, tx *Transaction) error
}

// Transaction is the unit of work spanning all of its joined data managers.
type Transaction struct {
	ID uuid.UUID

	manager  *Manager
	state    State
	managers []DataManager
	lock     sync.Mutex
}

// State gets the transaction state.
func (t *Transaction) State() State {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.state
}

// Manager gets the transaction manager that began the transaction.
func (t *Transaction) Manager() *Manager {
	return t.manager
}

// Join adds the data manager 'dm' to the transaction. Joining the same data manager more than once does nothing,
// thus the 'dm' dynamic type must be comparable.
func (t *Transaction) Join(dm DataManager) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.state.Done() {
		return errors.WrapDetf(ErrTxDone, "transaction: '%s' is already done", t.ID)
	}
	for _, joined := range t.managers {
		if joined == dm {
			return nil
		}
	}
	t.managers = append(t.managers, dm)
	log.Debug3f("Transaction: '%s' joined data manager: %T", t.ID, dm)
	return nil
}

// Joined gets the number of data managers joined to the transaction.
func (t *Transaction) Joined() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return len(t.managers)
}

// Commit commits the joined data managers in the order they joined. If any of them fails, the rest
// is aborted and the transaction state is set to failed.
func (t *Transaction) Commit(ctx context.Context) error {
	managers, err := t.finish()
	if err != nil {
		return err
	}
	defer t.manager.remove(t)

	for i, dm := range managers {
		rest := managers[i+1:]
		if err = ctx.Err(); err != nil {
			rest = managers[i:]
		} else {
			err = dm.Commit(ctx, t)
		}
		if err != nil {
			log.Debugf("Commit transaction: '%s' failed: %v", t.ID, err)
			for _, dm := range rest {
				if er := dm.Abort(ctx, t); er != nil {
					log.Errorf("Aborting transaction: '%s' after failed commit: %v", t.ID, er)
				}
			}
			t.setState(StateFailed)
			return err
		}
	}
	t.setState(StateCommit)
	log.Debugf("Commit transaction: '%s' with success", t.ID)
	return nil
}

// Abort aborts all the joined data managers. The errors of all the managers are combined into errors.MultiError.
func (t *Transaction) Abort(ctx context.Context) error {
	managers, err := t.finish()
	if err != nil {
		return err
	}
	defer t.manager.remove(t)

	var multi errors.MultiError
	for i := len(managers) - 1; i >= 0; i-- {
		if er := managers[i].Abort(ctx, t); er != nil {
			multi = append(multi, er)
		}
	}
	if len(multi) > 0 {
		t.setState(StateFailed)
		log.Debugf("Abort transaction: '%s' failed: %v", t.ID, multi)
		return multi
	}
	t.setState(StateRollback)
	log.Debugf("Abort transaction: '%s' with success", t.ID)
	return nil
}

// finish marks the transaction as finishing and returns the joined data managers.
func (t *Transaction) finish() ([]DataManager, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.state != StateBegin {
		return nil, errors.WrapDetf(ErrTxDone, "transaction: '%s' is already finished", t.ID)
	}
	// The state is set to failed until the outcome is known so that concurrent calls are rejected.
	t.state = StateFailed
	return append([]DataManager(nil), t.managers...), nil
}

func (t *Transaction) setState(s State) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.state = s
}
