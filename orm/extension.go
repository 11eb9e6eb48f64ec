package orm

import (
	"context"
)

// Extension is the session extension. It's hooks are called by the sessions created with
// a Sessionmaker configured with given extension. An extension implements any of the
// hook interfaces: AfterBeginner, BeforeCommitter, AfterCommitter, AfterRollbacker.
type Extension interface {
	// ExtensionName gets the extension name.
	ExtensionName() string
}

// AfterBeginner is the extension hook called after the session transaction began.
// An error returned from the hook rolls back the transaction.
type AfterBeginner interface {
	AfterBegin(ctx context.Context, s *Session) error
}

// BeforeCommitter is the extension hook called before the session transaction is committed.
// An error returned from the hook stops the commit.
type BeforeCommitter interface {
	BeforeCommit(ctx context.Context, s *Session) error
}

// AfterCommitter is the extension hook called after the session transaction was committed.
type AfterCommitter interface {
	AfterCommit(ctx context.Context, s *Session)
}

// AfterRollbacker is the extension hook called after the session transaction was rolled back.
type AfterRollbacker interface {
	AfterRollback(ctx context.Context, s *Session)
}
