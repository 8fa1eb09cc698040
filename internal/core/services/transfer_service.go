package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/events"
	"github.com/google/uuid"
)

type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	accountRepo  portsrepo.AccountReader
}

// NewTransferService creates the service that moves money between accounts.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, accountRepo portsrepo.AccountReader, options ...Option) portssvc.TransferSvcFacade {
	return &transferService{
		BaseService:  newBaseService(options...),
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
	}
}

func (s *transferService) TransferMoney(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.Transfer, error) {
	from := strings.TrimSpace(req.FromAccountID)
	to := strings.TrimSpace(req.ToAccountID)
	amount := req.Amount.Money()

	changes, err := balance.Transfer(from, to, amount)
	if err != nil {
		return nil, err
	}

	transfer := domain.Transfer{
		TransferID:    uuid.NewString(),
		UserID:        userID,
		FromAccountID: from,
		ToAccountID:   to,
		Amount:        amount,
		Description:   strings.TrimSpace(req.Description),
		CreatedAt:     s.Now(),
	}
	if err := s.transferRepo.SaveTransfer(ctx, transfer, changes); err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			s.LogError(ctx, err, "Failed to save transfer",
				slog.String("from_account_id", from),
				slog.String("to_account_id", to))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transfer completed",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("amount", amount.String()))
	s.publish(ctx, events.TransferCreated, userID, transfer.TransferID, dto.ToTransferResponse(&transfer))
	return &transfer, nil
}

func (s *transferService) ListTransfers(ctx context.Context, userID string, accountID string) ([]domain.Transfer, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID != "" {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, accountID); err != nil {
			return nil, err
		}
	}
	transfers, err := s.transferRepo.ListTransfers(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers", slog.String("account_id", accountID))
		return nil, err
	}
	if transfers == nil {
		return []domain.Transfer{}, nil
	}
	return transfers, nil
}

func (s *transferService) DeleteTransfer(ctx context.Context, userID string, transferID string) error {
	var undone domain.Transfer
	err := s.transferRepo.DeleteTransfer(ctx, userID, transferID, func(t domain.Transfer) (balance.Changes, error) {
		undone = t
		return balance.ReverseTransfer(t), nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrAccountNotFound) {
			s.LogError(ctx, err, "Failed to delete transfer", slog.String("transfer_id", transferID))
		}
		return err
	}
	s.LogInfo(ctx, "Transfer reversed", slog.String("transfer_id", transferID))
	s.publish(ctx, events.TransferDeleted, userID, transferID, dto.ToTransferResponse(&undone))
	return nil
}
