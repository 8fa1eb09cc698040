package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/core/query"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, transaction_type, amount, description, category,
	division, transaction_date, account_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// FindTransactionByID retrieves a single transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`, transactionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return collectOneTransaction(rows, transactionID)
}

func collectOneTransaction(rows pgx.Rows, transactionID string) (*domain.Transaction, error) {
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to scan transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// buildTransactionWhere turns a filter into a WHERE clause and its arguments.
func buildTransactionWhere(userID string, filter query.Filter) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Type != "" {
		add("transaction_type = $%d", string(filter.Type))
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Division != "" {
		add("division = $%d", string(filter.Division))
	}
	if filter.StartDate != nil {
		add("transaction_date >= $%d", domain.DateOf(*filter.StartDate))
	}
	if filter.EndDate != nil {
		add("transaction_date <= $%d", domain.DateOf(*filter.EndDate))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(description ILIKE $%d OR category ILIKE $%d)", n, n))
	}
	return strings.Join(conditions, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListTransactions returns the user's transactions newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter query.Filter) ([]domain.Transaction, error) {
	where, args := buildTransactionWhere(userID, filter)
	rows, err := r.Pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE `+where+`
		ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC;
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`, m.TransactionID, m.UserID, m.TransactionType, m.Amount, m.Description, m.Category,
		m.Division, m.TransactionDate, m.AccountID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return translateTransactionWriteError(err, m)
}

func translateTransactionWriteError(err error, m models.Transaction) error {
	if err == nil {
		return nil
	}
	switch pgErrorCode(err) {
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %v", apperrors.ErrAccountNotFound, deref(m.AccountID))
	case pgUniqueViolation:
		return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
	}
	return fmt.Errorf("failed to write transaction %s: %w", m.TransactionID, err)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CreateTransaction inserts the row and moves the linked balance in one database transaction.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction, changes balance.Changes) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := applyBalanceChanges(ctx, tx, txn.UserID, changes); err != nil {
			return err
		}
		return insertTransaction(ctx, tx, mapping.ToModelTransaction(txn))
	})
}

// MutateTransaction locks the row with FOR UPDATE so concurrent edits of the
// same transaction are serialized, then persists what mutate decides.
func (r *PgxTransactionRepository) MutateTransaction(ctx context.Context, userID string, transactionID string, mutate portsrepo.TransactionMutator) (*domain.Transaction, error) {
	var result *domain.Transaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT `+transactionColumns+`
			FROM transactions
			WHERE transaction_id = $1 AND user_id = $2
			FOR UPDATE;
		`, transactionID, userID)
		if err != nil {
			return fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
		}
		current, err := collectOneTransaction(rows, transactionID)
		if err != nil {
			return err
		}

		next, changes, err := mutate(*current)
		if err != nil {
			return err
		}
		if err := applyBalanceChanges(ctx, tx, userID, changes); err != nil {
			return err
		}

		if next == nil {
			if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`, transactionID, userID); err != nil {
				return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
			}
			return nil
		}

		m := mapping.ToModelTransaction(*next)
		_, err = tx.Exec(ctx, `
			UPDATE transactions
			SET transaction_type = $1, amount = $2, description = $3, category = $4, division = $5,
				transaction_date = $6, account_id = $7, last_updated_at = $8, last_updated_by = $9
			WHERE transaction_id = $10 AND user_id = $11;
		`, m.TransactionType, m.Amount, m.Description, m.Category, m.Division,
			m.TransactionDate, m.AccountID, m.LastUpdatedAt, m.LastUpdatedBy, transactionID, userID)
		if err := translateTransactionWriteError(err, m); err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
