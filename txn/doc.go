/*
Package txn is the transaction manager that coordinates the commit of multiple data managers,
such as orm sessions, within a single transaction.

The Extension joins each orm.Session that begins within the context transaction, so that
the session is committed or rolled back together with the transaction:

	ctx, tx := manager.Begin(ctx)
	session := scoped.Session(ctx)
	...
	err := tx.Commit(ctx)

RunInTransaction wraps this flow, aborting the transaction on error or panic.
*/
package txn
