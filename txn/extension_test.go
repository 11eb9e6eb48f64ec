package txn_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/orm"
	"github.com/neuronlabs/dbhelper/orm/mockorm"
	"github.com/neuronlabs/dbhelper/txn"
)

// TestExtension tests joining the sessions to the context transaction.
func TestExtension(t *testing.T) {
	m := txn.NewManager()
	ext := txn.NewExtension(m)
	assert.Equal(t, txn.ExtensionName, ext.ExtensionName())
	assert.Same(t, m, ext.Manager())

	e := mockorm.New("postgres://localhost/app")
	scoped := orm.NewScopedSession(orm.NewSessionmaker(orm.WithBind(e), orm.WithExtensions(ext)))

	t.Run("Commit", func(t *testing.T) {
		ctx, tx := m.Begin(orm.WithScope(context.Background()))
		s := scoped.Session(ctx)
		require.NoError(t, s.Begin(ctx))
		assert.Equal(t, 1, tx.Joined())

		require.NoError(t, tx.Commit(ctx))
		assert.False(t, s.InTransaction())
		assert.True(t, e.LastTx().Committed)
	})

	t.Run("Abort", func(t *testing.T) {
		err := txn.RunInTransaction(orm.WithScope(context.Background()), m, func(ctx context.Context, tx *txn.Transaction) error {
			_, err := scoped.Session(ctx).Tx(ctx)
			require.NoError(t, err)
			return errors.New("failed")
		})
		require.Error(t, err)
		assert.True(t, e.LastTx().RolledBack)
	})

	t.Run("ClosedSession", func(t *testing.T) {
		ctx, tx := m.Begin(orm.WithScope(context.Background()))
		require.NoError(t, scoped.Session(ctx).Begin(ctx))
		require.NoError(t, scoped.Close(ctx))
		require.NoError(t, tx.Abort(ctx))
	})

	t.Run("NoTransaction", func(t *testing.T) {
		ctx := orm.WithScope(context.Background())
		s := scoped.Session(ctx)
		require.NoError(t, s.Begin(ctx))
		require.NoError(t, s.Commit(ctx))
		assert.True(t, e.LastTx().Committed)
	})

	t.Run("DoneTransaction", func(t *testing.T) {
		ctx, tx := m.Begin(orm.WithScope(context.Background()))
		require.NoError(t, tx.Abort(ctx))

		err := scoped.Session(ctx).Begin(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, txn.ErrTxDone))
		assert.True(t, e.LastTx().RolledBack)
	})
}
