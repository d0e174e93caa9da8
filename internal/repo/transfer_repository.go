package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/warehousr/inventory-api/internal/models"
)

// TransferRepository moves stock between two products atomically.
type TransferRepository interface {
	Transfer(ctx context.Context, fromID, toID, quantity int) (models.Transfer, error)
}

// ErrInsufficientStock is returned when the conditional debit matched zero
// rows: the source product is missing or its stock is below the requested
// quantity. The two causes are indistinguishable because the sufficiency
// check and the mutation are one atomic statement.
var ErrInsufficientStock = errors.New("insufficient stock or source product not found")

// ErrDestinationNotFound is returned when the credit matched zero rows. The
// already-applied debit is rolled back before this is reported.
var ErrDestinationNotFound = errors.New("destination product not found")

// TransferFault is a statement-level failure inside the transfer
// transaction. The transaction is rolled back and the store's diagnostic
// text is propagated, but it is reported in the same fault class as the
// zero-rows outcomes rather than as a server fault.
type TransferFault struct {
	Err error
}

func (e *TransferFault) Error() string { return e.Err.Error() }

func (e *TransferFault) Unwrap() error { return e.Err }

// ConsistencyError reports a commit failure after both mutations succeeded.
// The durability of the debit and credit is unknown at this point, so it is
// surfaced distinctly from ordinary faults.
type ConsistencyError struct {
	Err error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("commit failed, stock consistency is at risk: %v", e.Err)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }
