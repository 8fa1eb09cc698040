package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/core/query"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/events"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates the transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, options ...Option) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(options...),
		txnRepo:     txnRepo,
	}
}

func (s *transactionService) respond(txn domain.Transaction) *dto.TransactionResponse {
	res := dto.ToTransactionResponse(txn, s.editPolicy, s.Now())
	return &res
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*dto.TransactionResponse, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return s.respond(*txn), nil
}

// filtered loads the user's transactions matching params, newest first.
func (s *transactionService) filtered(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, err
	}
	// Repositories may skip the search term; applying the full filter again is harmless.
	return query.SortNewestFirst(query.Apply(txns, filter)), nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, err := s.filtered(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	page, next, err := query.Paginate(txns, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Transactions listed", slog.Int("matched", len(txns)), slog.Int("returned", len(page)))
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(page, s.editPolicy, s.Now()),
		NextToken:    next,
	}, nil
}

func (s *transactionService) ListTransactionsByDay(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]dto.DayGroupResponse, error) {
	txns, err := s.filtered(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	groups, err := query.GroupByDay(txns)
	if err != nil {
		return nil, err
	}
	return dto.ToDayGroupResponses(groups, s.editPolicy, s.Now()), nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txn, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	now := s.Now()
	txn.TransactionID = uuid.NewString()
	txn.UserID = userID
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.CreateTransaction(ctx, txn, balance.ForTransaction(txn)); err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			s.LogError(ctx, err, "Failed to create transaction", slog.String("transaction_id", txn.TransactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	res := s.respond(txn)
	s.publish(ctx, events.TransactionCreated, userID, txn.TransactionID, res)
	return res, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	next, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	now := s.Now()

	updated, err := s.txnRepo.MutateTransaction(ctx, userID, transactionID, func(current domain.Transaction) (*domain.Transaction, balance.Changes, error) {
		if err := s.editPolicy.Check(current.CreatedAt, now); err != nil {
			return nil, nil, err
		}
		next.TransactionID = current.TransactionID
		next.UserID = current.UserID
		next.CreatedAt = current.CreatedAt
		next.CreatedBy = current.CreatedBy
		next.LastUpdatedAt = now
		next.LastUpdatedBy = userID
		if err := next.Validate(); err != nil {
			return nil, nil, err
		}
		return &next, balance.Reconcile(current, next), nil
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to update transaction", transactionID)
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	res := s.respond(*updated)
	s.publish(ctx, events.TransactionUpdated, userID, transactionID, res)
	return res, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	now := s.Now()
	var deleted domain.Transaction

	_, err := s.txnRepo.MutateTransaction(ctx, userID, transactionID, func(current domain.Transaction) (*domain.Transaction, balance.Changes, error) {
		if err := s.editPolicy.Check(current.CreatedAt, now); err != nil {
			return nil, nil, err
		}
		deleted = current
		return nil, balance.ReverseTransaction(current.AccountID, current.Type, current.Amount), nil
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to delete transaction", transactionID)
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	s.publish(ctx, events.TransactionDeleted, userID, transactionID, s.respond(deleted))
	return nil
}

// logMutationError stays quiet for outcomes the caller caused.
func (s *transactionService) logMutationError(ctx context.Context, err error, msg, transactionID string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrEditWindowExpired),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrAccountNotFound):
		s.LogDebug(ctx, msg, slog.String("transaction_id", transactionID), slog.String("reason", err.Error()))
	default:
		s.LogError(ctx, err, msg, slog.String("transaction_id", transactionID))
	}
}
