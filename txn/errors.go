package txn

import (
	"github.com/neuronlabs/dbhelper/errors"
)

var (
	// ErrTransaction is the major transaction error classification.
	ErrTransaction = errors.New("transaction")
	// ErrTxDone is the error classification for the operations on finished transactions.
	ErrTxDone = errors.Wrap(ErrTransaction, "done")
	// ErrNoTransaction is the error classification when the context has no transaction.
	ErrNoTransaction = errors.Wrap(ErrTransaction, "no transaction")
)
