package txn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/dbhelper/errors"
)

type dataManager struct {
	mock.Mock
}

func (d *dataManager) Commit(ctx context.Context, tx *Transaction) error {
	return d.Called(ctx, tx).Error(0)
}

func (d *dataManager) Abort(ctx context.Context, tx *Transaction) error {
	return d.Called(ctx, tx).Error(0)
}

// TestTransactionCommit tests committing the joined data managers.
func TestTransactionCommit(t *testing.T) {
	m := NewManager()

	t.Run("Success", func(t *testing.T) {
		ctx, tx := m.Begin(context.Background())
		assert.Equal(t, StateBegin, tx.State())
		assert.Equal(t, 1, m.Active())

		var order []int
		first, second := &dataManager{}, &dataManager{}
		first.On("Commit", ctx, tx).Run(func(mock.Arguments) { order = append(order, 1) }).Return(nil).Once()
		second.On("Commit", ctx, tx).Run(func(mock.Arguments) { order = append(order, 2) }).Return(nil).Once()

		require.NoError(t, tx.Join(first))
		require.NoError(t, tx.Join(second))
		require.NoError(t, tx.Join(first))
		assert.Equal(t, 2, tx.Joined())

		require.NoError(t, tx.Commit(ctx))
		assert.Equal(t, []int{1, 2}, order)
		assert.Equal(t, StateCommit, tx.State())
		assert.Equal(t, 0, m.Active())
		first.AssertExpectations(t)
		second.AssertExpectations(t)

		err := tx.Commit(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTxDone))

		err = tx.Join(&dataManager{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTxDone))
	})

	t.Run("Failure", func(t *testing.T) {
		ctx, tx := m.Begin(context.Background())
		commitErr := errors.New("commit failed")

		first, second, third := &dataManager{}, &dataManager{}, &dataManager{}
		first.On("Commit", ctx, tx).Return(nil).Once()
		second.On("Commit", ctx, tx).Return(commitErr).Once()
		third.On("Abort", ctx, tx).Return(nil).Once()
		for _, dm := range []*dataManager{first, second, third} {
			require.NoError(t, tx.Join(dm))
		}

		err := tx.Commit(ctx)
		assert.Equal(t, commitErr, err)
		assert.Equal(t, StateFailed, tx.State())
		first.AssertExpectations(t)
		second.AssertExpectations(t)
		third.AssertExpectations(t)
		third.AssertNotCalled(t, "Commit", ctx, tx)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, tx := m.Begin(context.Background())
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		dm := &dataManager{}
		dm.On("Abort", ctx, tx).Return(nil).Once()
		require.NoError(t, tx.Join(dm))

		err := tx.Commit(ctx)
		assert.Equal(t, context.Canceled, err)
		assert.Equal(t, StateFailed, tx.State())
		dm.AssertExpectations(t)
	})
}

// TestTransactionAbort tests aborting the joined data managers.
func TestTransactionAbort(t *testing.T) {
	m := NewManager()

	t.Run("Success", func(t *testing.T) {
		ctx, tx := m.Begin(context.Background())
		dm := &dataManager{}
		dm.On("Abort", ctx, tx).Return(nil).Once()
		require.NoError(t, tx.Join(dm))

		require.NoError(t, tx.Abort(ctx))
		assert.Equal(t, StateRollback, tx.State())
		dm.AssertExpectations(t)

		err := tx.Abort(ctx)
		assert.True(t, errors.Is(err, ErrTxDone))
	})

	t.Run("Errors", func(t *testing.T) {
		ctx, tx := m.Begin(context.Background())
		abortErr := errors.New("abort failed")

		first, second := &dataManager{}, &dataManager{}
		first.On("Abort", ctx, tx).Return(abortErr).Once()
		second.On("Abort", ctx, tx).Return(nil).Once()
		require.NoError(t, tx.Join(first))
		require.NoError(t, tx.Join(second))

		err := tx.Abort(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, abortErr))
		assert.Equal(t, StateFailed, tx.State())
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})
}

// TestState tests the transaction state stringer.
func TestState(t *testing.T) {
	assert.Equal(t, "begin", StateBegin.String())
	assert.Equal(t, "commit", StateCommit.String())
	assert.Equal(t, "rollback", StateRollback.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(0).String())
	assert.False(t, StateBegin.Done())
	assert.True(t, StateFailed.Done())
}
