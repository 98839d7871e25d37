package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easycashflows/api/internal/domain/repository"
)

// TxRunner esegue callback dentro una transazione PostgreSQL. I repository
// passati alla callback sono legati alla transazione: validazione dei
// riferimenti e scrittura del movimento vedono lo stesso snapshot.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner costruisce il runner con il pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run avvia una transazione, esegue fn con repos legati alla tx e fa Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	refRepo repository.ReferenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	refRepo := NewReferenceRepository(tx)

	if err := fn(movRepo, refRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
