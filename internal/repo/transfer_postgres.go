package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/warehousr/inventory-api/internal/models"
)

// PostgresTransferRepository coordinates the atomic two-step stock
// adjustment. Correctness under concurrency rests on the store's row locking
// plus conditional updates whose WHERE clause carries the business
// precondition; there is no read-then-write step to race against.
type PostgresTransferRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresTransferRepository(db *sql.DB, log *logrus.Logger) *PostgresTransferRepository {
	return &PostgresTransferRepository{db: db, log: log}
}

func (r *PostgresTransferRepository) Transfer(ctx context.Context, fromID, toID, quantity int) (models.Transfer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Transfer{}, fmt.Errorf("failed to begin transfer transaction: %w", err)
	}
	// Backstop: every exit path below drives the transaction to a terminal
	// state, but a panic between them must not leave a row lock held.
	defer tx.Rollback()

	// Debit. The stock check and the decrement are one statement, so two
	// concurrent transfers cannot both observe sufficient stock and then
	// both debit past zero.
	res, err := tx.ExecContext(ctx,
		`UPDATE products SET stock_quantity = stock_quantity - $1
		 WHERE product_id = $2 AND stock_quantity >= $1`,
		quantity, fromID)
	if err != nil {
		r.rollback(tx)
		return models.Transfer{}, &TransferFault{Err: fmt.Errorf("failed to debit product %d: %w", fromID, err)}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		r.rollback(tx)
		return models.Transfer{}, ErrInsufficientStock
	}

	// Credit. Guarded only by the destination's existence.
	res, err = tx.ExecContext(ctx,
		`UPDATE products SET stock_quantity = stock_quantity + $1
		 WHERE product_id = $2`,
		quantity, toID)
	if err != nil {
		r.rollback(tx)
		return models.Transfer{}, &TransferFault{Err: fmt.Errorf("failed to credit product %d: %w", toID, err)}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		r.rollback(tx)
		return models.Transfer{}, ErrDestinationNotFound
	}

	if err := tx.Commit(); err != nil {
		// Both mutations succeeded but their durability is unconfirmed;
		// this cannot be masked as an ordinary fault.
		return models.Transfer{}, &ConsistencyError{Err: err}
	}

	return models.Transfer{FromProductID: fromID, ToProductID: toID, Quantity: quantity}, nil
}

// rollback discards the transaction. A rollback failure is logged but never
// masks the fault being reported to the caller.
func (r *PostgresTransferRepository) rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		r.log.Warnf("transfer rollback failed: %v", err)
	}
}
