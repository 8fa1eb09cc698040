package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transferColumns = `transfer_id, user_id, from_account_id, to_account_id, amount, description, created_at`

type PgxTransferRepository struct {
	BaseRepository
}

func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, userID string, transferID string) (*domain.Transfer, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+transferColumns+`
		FROM transfers
		WHERE transfer_id = $1 AND user_id = $2;
	`, transferID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}
	return collectOneTransfer(rows, transferID)
}

func collectOneTransfer(rows pgx.Rows, transferID string) (*domain.Transfer, error) {
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Transfer])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transfer %s", apperrors.ErrNotFound, transferID)
		}
		return nil, fmt.Errorf("failed to scan transfer %s: %w", transferID, err)
	}
	t := mapping.ToDomainTransfer(m)
	return &t, nil
}

func (r *PgxTransferRepository) ListTransfers(ctx context.Context, userID string, accountID string) ([]domain.Transfer, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+transferColumns+`
		FROM transfers
		WHERE user_id = $1 AND ($2 = '' OR from_account_id = $2 OR to_account_id = $2)
		ORDER BY created_at DESC, transfer_id DESC;
	`, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transfer])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transfers: %w", err)
	}
	return mapping.ToDomainTransferSlice(ms), nil
}

// SaveTransfer debits the source, credits the destination and records the transfer together.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer, changes balance.Changes) error {
	m := mapping.ToModelTransfer(transfer)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := applyBalanceChanges(ctx, tx, transfer.UserID, changes); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO transfers (`+transferColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, m.TransferID, m.UserID, m.FromAccountID, m.ToAccountID, m.Amount, m.Description, m.CreatedAt)
		if err != nil {
			switch pgErrorCode(err) {
			case pgForeignKeyViolation:
				return fmt.Errorf("%w: transfer %s references a missing account", apperrors.ErrAccountNotFound, m.TransferID)
			case pgUniqueViolation:
				return fmt.Errorf("%w: transfer %s", apperrors.ErrDuplicate, m.TransferID)
			}
			return fmt.Errorf("failed to save transfer %s: %w", m.TransferID, err)
		}
		return nil
	})
}

func (r *PgxTransferRepository) DeleteTransfer(ctx context.Context, userID string, transferID string, reverse func(domain.Transfer) (balance.Changes, error)) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT `+transferColumns+`
			FROM transfers
			WHERE transfer_id = $1 AND user_id = $2
			FOR UPDATE;
		`, transferID, userID)
		if err != nil {
			return fmt.Errorf("failed to lock transfer %s: %w", transferID, err)
		}
		current, err := collectOneTransfer(rows, transferID)
		if err != nil {
			return err
		}
		changes, err := reverse(*current)
		if err != nil {
			return err
		}
		if err := applyBalanceChanges(ctx, tx, userID, changes); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM transfers WHERE transfer_id = $1 AND user_id = $2;`, transferID, userID); err != nil {
			return fmt.Errorf("failed to delete transfer %s: %w", transferID, err)
		}
		return nil
	})
}
