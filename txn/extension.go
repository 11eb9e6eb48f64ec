package txn

import (
	"context"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
)

// ExtensionName is the name of the transaction session extension.
const ExtensionName = "txn"

var (
	_ orm.AfterBeginner = &Extension{}
	_ DataManager       = sessionManager{}
)

// Extension is the orm session extension that joins the sessions to the context transaction of its manager.
// The sessions that begin without the transaction in the context are not affected.
type Extension struct {
	manager *Manager
}

// NewExtension creates new session extension for the transaction manager 'm'.
func NewExtension(m *Manager) *Extension {
	return &Extension{manager: m}
}

// ExtensionName implements orm.Extension interface.
func (e *Extension) ExtensionName() string {
	return ExtensionName
}

// Manager gets the extension transaction manager.
func (e *Extension) Manager() *Manager {
	return e.manager
}

// AfterBegin implements orm.AfterBeginner interface. It joins the session 's' to the context transaction.
func (e *Extension) AfterBegin(ctx context.Context, s *orm.Session) error {
	tx, err := e.manager.Current(ctx)
	if err != nil {
		if errors.Is(err, ErrNoTransaction) {
			return nil
		}
		return err
	}
	log.Debug3f("Session: '%s' joins transaction: '%s'", s.ID, tx.ID)
	return tx.Join(sessionManager{session: s})
}

// sessionManager is the DataManager of the joined session.
type sessionManager struct {
	session *orm.Session
}

// Commit implements DataManager interface.
func (m sessionManager) Commit(ctx context.Context, _ *Transaction) error {
	return m.session.Commit(ctx)
}

// Abort implements DataManager interface.
func (m sessionManager) Abort(ctx context.Context, _ *Transaction) error {
	if m.session.State() == orm.SessionClosed {
		// Closing the session had already rolled it back.
		return nil
	}
	return m.session.Rollback(ctx)
}
