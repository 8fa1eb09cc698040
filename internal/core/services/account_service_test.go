package services_test

import (
	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

func (s *serviceSuite) TestAccounts_CreateUpdateTotal() {
	a := s.newAccount("Wallet", 1250)
	s.newAccount("Card", -500)

	total, count, err := s.accounts.GetTotalBalance(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(domain.Money(750), total)
	s.Equal(2, count)

	name := "  Pocket  "
	typ := domain.Wallet
	updated, err := s.accounts.UpdateAccount(s.ctx, s.userID, a, dto.UpdateAccountRequest{Name: &name, AccountType: &typ})
	s.Require().NoError(err)
	s.Equal("Pocket", updated.Name)
	s.Equal(domain.Wallet, updated.AccountType)
	s.Equal(domain.Money(1250), updated.Balance, "updates never touch the balance")

	_, err = s.accounts.CreateAccount(s.ctx, s.userID, dto.CreateAccountRequest{Name: "pocket", AccountType: domain.Cash})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.accounts.CreateAccount(s.ctx, s.userID, dto.CreateAccountRequest{Name: "x", AccountType: "crypto"})
	s.ErrorIs(err, apperrors.ErrValidation)

	list, err := s.accounts.ListAccounts(s.ctx, "nobody")
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *serviceSuite) TestDeleteAccount() {
	a := s.newAccount("A", 0)
	b := s.newAccount("B", 0)
	_, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Income, 10, a))
	s.Require().NoError(err)

	s.ErrorIs(s.accounts.DeleteAccount(s.ctx, s.userID, a), apperrors.ErrConflict)
	s.NoError(s.accounts.DeleteAccount(s.ctx, s.userID, b))
	s.ErrorIs(s.accounts.DeleteAccount(s.ctx, s.userID, b), apperrors.ErrNotFound)
}

func (s *serviceSuite) TestTransferMoney() {
	from := s.newAccount("From", 1000)
	to := s.newAccount("To", 0)

	tr, err := s.transfers.TransferMoney(s.ctx, s.userID, dto.CreateTransferRequest{FromAccountID: from, ToAccountID: to, Amount: 400, Description: " rent share "})
	s.Require().NoError(err)
	s.Equal("rent share", tr.Description)
	s.Equal(domain.Money(600), s.balance(from))
	s.Equal(domain.Money(400), s.balance(to))

	list, err := s.transfers.ListTransfers(s.ctx, s.userID, to)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.transfers.DeleteTransfer(s.ctx, s.userID, tr.TransferID))
	s.Equal(domain.Money(1000), s.balance(from))
	s.Equal(domain.Money(0), s.balance(to))
	s.ErrorIs(s.transfers.DeleteTransfer(s.ctx, s.userID, tr.TransferID), apperrors.ErrNotFound)
}

func (s *serviceSuite) TestTransferMoney_Rejections() {
	from := s.newAccount("From", 1000)

	tests := []struct {
		name string
		req  dto.CreateTransferRequest
		want error
	}{
		{"same account", dto.CreateTransferRequest{FromAccountID: from, ToAccountID: from, Amount: 10}, apperrors.ErrInvalidTransfer},
		{"zero amount", dto.CreateTransferRequest{FromAccountID: from, ToAccountID: "x", Amount: 0}, apperrors.ErrInvalidTransfer},
		{"negative amount", dto.CreateTransferRequest{FromAccountID: from, ToAccountID: "x", Amount: -5}, apperrors.ErrInvalidTransfer},
		{"unknown destination", dto.CreateTransferRequest{FromAccountID: from, ToAccountID: "ghost", Amount: 10}, apperrors.ErrAccountNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.transfers.TransferMoney(s.ctx, s.userID, tt.req)
			s.ErrorIs(err, tt.want)
			s.Equal(domain.Money(1000), s.balance(from))
		})
	}

	_, err := s.transfers.ListTransfers(s.ctx, s.userID, "ghost")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
