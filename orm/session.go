package orm

import (
	"context"

	"github.com/google/uuid"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
)

// SessionState is the current session state.
type SessionState int

// Session state enums.
const (
	SessionActive SessionState = iota
	SessionInTransaction
	SessionClosed
)

// String implements fmt.Stringer interface.
func (s SessionState) String() string {
	switch s {
	case SessionActive:
		return "active"
	case SessionInTransaction:
		return "in_transaction"
	case SessionClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is a single unit of work over the transaction of its bound engine.
// A Session is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	bind       Engine
	extensions []Extension
	tx         Tx
	state      SessionState
}

func newSession(bind Engine, extensions []Extension) *Session {
	return &Session{
		ID:         uuid.New(),
		bind:       bind,
		extensions: extensions,
	}
}

// Bind gets the engine the session is bound to.
func (s *Session) Bind() Engine {
	return s.bind
}

// Extensions gets the session extensions.
func (s *Session) Extensions() []Extension {
	return s.extensions
}

// State gets the session state.
func (s *Session) State() SessionState {
	return s.state
}

// InTransaction checks if the session has an in-progress transaction.
func (s *Session) InTransaction() bool {
	return s.state == SessionInTransaction
}

// Begin starts the session transaction on the bound engine. The session extensions AfterBegin hooks are
// called afterwards - if any of them fails the transaction is rolled back.
func (s *Session) Begin(ctx context.Context) error {
	switch s.state {
	case SessionClosed:
		return errors.WrapDetf(ErrSessionClosed, "session: '%s' is closed", s.ID)
	case SessionInTransaction:
		return errors.WrapDetf(ErrTxAlreadyBegan, "session: '%s' transaction already began", s.ID)
	}
	if s.bind == nil {
		return errors.WrapDetf(ErrNoBind, "session: '%s' is not bound to any engine", s.ID)
	}

	tx, err := s.bind.Begin(ctx)
	if err != nil {
		return err
	}
	s.tx, s.state = tx, SessionInTransaction
	log.Debug2f("Session: '%s' began transaction", s.ID)

	for _, ext := range s.extensions {
		beginner, ok := ext.(AfterBeginner)
		if !ok {
			continue
		}
		if err = beginner.AfterBegin(ctx, s); err != nil {
			log.Debugf("Session: '%s' extension: '%s' after begin failed: %v", s.ID, ext.ExtensionName(), err)
			if er := tx.Rollback(); er != nil {
				log.Errorf("Rolling back session: '%s' transaction failed: %v", s.ID, er)
			}
			s.tx, s.state = nil, SessionActive
			return err
		}
	}
	return nil
}

// Tx gets the session transaction. If the transaction had not began yet, it begins it.
func (s *Session) Tx(ctx context.Context) (Tx, error) {
	if s.state != SessionInTransaction {
		if err := s.Begin(ctx); err != nil {
			return nil, err
		}
	}
	return s.tx, nil
}

// Commit commits the session transaction. If there is no transaction in progress, the function does nothing.
func (s *Session) Commit(ctx context.Context) error {
	switch s.state {
	case SessionClosed:
		return errors.WrapDetf(ErrSessionClosed, "session: '%s' is closed", s.ID)
	case SessionActive:
		log.Debug3f("Session: '%s' nothing to commit", s.ID)
		return nil
	}

	for _, ext := range s.extensions {
		if committer, ok := ext.(BeforeCommitter); ok {
			if err := committer.BeforeCommit(ctx, s); err != nil {
				return err
			}
		}
	}

	tx := s.tx
	s.tx, s.state = nil, SessionActive
	if err := tx.Commit(); err != nil {
		log.Debugf("Session: '%s' commit failed: %v", s.ID, err)
		return err
	}
	log.Debug2f("Session: '%s' committed", s.ID)

	for _, ext := range s.extensions {
		if committer, ok := ext.(AfterCommitter); ok {
			committer.AfterCommit(ctx, s)
		}
	}
	return nil
}

// Rollback rolls back the session transaction. If there is no transaction in progress, the function does nothing.
func (s *Session) Rollback(ctx context.Context) error {
	switch s.state {
	case SessionClosed:
		return errors.WrapDetf(ErrSessionClosed, "session: '%s' is closed", s.ID)
	case SessionActive:
		return nil
	}

	tx := s.tx
	s.tx, s.state = nil, SessionActive
	err := tx.Rollback()
	if err != nil {
		log.Debugf("Session: '%s' rollback failed: %v", s.ID, err)
	} else {
		log.Debug2f("Session: '%s' rolled back", s.ID)
	}

	for _, ext := range s.extensions {
		if rollbacker, ok := ext.(AfterRollbacker); ok {
			rollbacker.AfterRollback(ctx, s)
		}
	}
	return err
}

// Close rolls back any in-progress transaction and closes the session. Closing a closed session does nothing.
func (s *Session) Close(ctx context.Context) error {
	if s.state == SessionClosed {
		return nil
	}
	err := s.Rollback(ctx)
	s.state = SessionClosed
	return err
}
