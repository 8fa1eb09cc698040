package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// inTx runs fn inside a database transaction and commits when it returns nil.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// pgErrorCode returns the postgres SQLSTATE of err, if any.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

const accountColumns = `account_id, user_id, name, account_type, initial_balance, balance,
	created_at, created_by, last_updated_at, last_updated_by`

// applyBalanceChanges locks the touched accounts in id order, computes the new
// balances and writes them back, all inside tx.
func applyBalanceChanges(ctx context.Context, tx pgx.Tx, userID string, changes balance.Changes) error {
	ids := changes.AccountIDs()
	if len(ids) == 0 {
		return nil
	}

	rows, err := tx.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE user_id = $1 AND account_id = ANY($2)
		ORDER BY account_id
		FOR UPDATE;
	`, userID, ids)
	if err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}
	locked, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return fmt.Errorf("failed to scan locked accounts: %w", err)
	}

	current := make(map[string]domain.Account, len(locked))
	for _, m := range locked {
		current[m.AccountID] = mapping.ToDomainAccount(m)
	}
	updated, err := balance.Apply(current, changes)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(`UPDATE accounts SET balance = $1 WHERE account_id = $2;`, int64(updated[id].Balance), id)
	}
	br := tx.SendBatch(ctx, batch)
	for _, id := range ids {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to update balance for account %s: %w", id, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return nil
}
