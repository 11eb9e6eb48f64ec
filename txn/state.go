package txn

import (
	"fmt"
)

// State defines the current transaction state.
type State int

// Transaction state enums.
const (
	_ State = iota
	StateBegin
	StateCommit
	StateRollback
	StateFailed
)

var _ fmt.Stringer = StateBegin

// String implements fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case StateBegin:
		return "begin"
	case StateCommit:
		return "commit"
	case StateRollback:
		return "rollback"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Done checks if the transaction is already finished.
func (s State) Done() bool {
	return s == StateCommit || s == StateRollback || s == StateFailed
}
