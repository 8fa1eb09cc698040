package services_test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/events"
)

func (s *serviceSuite) TestCreateTransaction_MovesBalance() {
	acc := s.newAccount("Main", 10000)

	income, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Income, 2500, acc))
	s.Require().NoError(err)
	s.True(income.IsEditable)
	s.Equal(s.clock.Now().Add(12*time.Hour), income.EditableUntil)

	_, err = s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Expense, 4000, acc))
	s.Require().NoError(err)
	s.Equal(domain.Money(8500), s.balance(acc))

	// No account, no balance effect.
	_, err = s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Expense, 999, ""))
	s.Require().NoError(err)
	s.Equal(domain.Money(8500), s.balance(acc))

	s.Equal([]events.Type{events.AccountCreated, events.TransactionCreated, events.TransactionCreated, events.TransactionCreated}, s.publisher.Types())
}

func (s *serviceSuite) TestCreateTransaction_Errors() {
	_, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Income, 100, "missing"))
	s.ErrorIs(err, apperrors.ErrAccountNotFound)

	res, err := s.transactions.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Empty(res.Transactions, "a failed create must not leave a row")

	bad := txnReq(domain.Income, 0, "")
	_, err = s.transactions.CreateTransaction(s.ctx, s.userID, bad)
	s.ErrorIs(err, apperrors.ErrValidation)

	bad = txnReq(domain.Income, 100, "")
	bad.Date = "15-05-2024"
	_, err = s.transactions.CreateTransaction(s.ctx, s.userID, bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *serviceSuite) TestUpdateTransaction_ReversesThenApplies() {
	a := s.newAccount("A", 0)
	b := s.newAccount("B", 0)

	created, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Expense, 300, a))
	s.Require().NoError(err)
	s.Equal(domain.Money(-300), s.balance(a))

	s.clock.Advance(11 * time.Hour)
	updated, err := s.transactions.UpdateTransaction(s.ctx, s.userID, created.TransactionID, dto.UpdateTransactionRequest(txnReq(domain.Income, 700, b)))
	s.Require().NoError(err)
	s.Equal(domain.Income, updated.Type)
	s.Equal(created.CreatedAt, updated.CreatedAt, "creation time never moves")
	s.Equal(domain.Money(0), s.balance(a))
	s.Equal(domain.Money(700), s.balance(b))

	// Pointing at an unknown account fails without touching anything.
	_, err = s.transactions.UpdateTransaction(s.ctx, s.userID, created.TransactionID, dto.UpdateTransactionRequest(txnReq(domain.Income, 700, "ghost")))
	s.ErrorIs(err, apperrors.ErrAccountNotFound)
	s.Equal(domain.Money(700), s.balance(b))
}

func (s *serviceSuite) TestEditWindow() {
	acc := s.newAccount("Main", 0)
	created, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Income, 100, acc))
	s.Require().NoError(err)

	s.clock.Advance(12*time.Hour - time.Second)
	got, err := s.transactions.GetTransactionByID(s.ctx, s.userID, created.TransactionID)
	s.Require().NoError(err)
	s.True(got.IsEditable)

	s.clock.Advance(time.Second)
	got, err = s.transactions.GetTransactionByID(s.ctx, s.userID, created.TransactionID)
	s.Require().NoError(err)
	s.False(got.IsEditable, "exactly twelve hours is outside the window")

	_, err = s.transactions.UpdateTransaction(s.ctx, s.userID, created.TransactionID, dto.UpdateTransactionRequest(txnReq(domain.Income, 5, acc)))
	s.ErrorIs(err, apperrors.ErrEditWindowExpired)
	s.ErrorIs(s.transactions.DeleteTransaction(s.ctx, s.userID, created.TransactionID), apperrors.ErrEditWindowExpired)
	s.Equal(domain.Money(100), s.balance(acc), "rejected edits leave the balance alone")
}

func (s *serviceSuite) TestDeleteTransaction() {
	acc := s.newAccount("Main", 1000)
	created, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Expense, 250, acc))
	s.Require().NoError(err)

	s.Require().NoError(s.transactions.DeleteTransaction(s.ctx, s.userID, created.TransactionID))
	s.Equal(domain.Money(1000), s.balance(acc))

	_, err = s.transactions.GetTransactionByID(s.ctx, s.userID, created.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.transactions.DeleteTransaction(s.ctx, s.userID, created.TransactionID), apperrors.ErrNotFound)
	s.ErrorIs(s.transactions.DeleteTransaction(s.ctx, "someone-else", "whatever"), apperrors.ErrNotFound)
}

func (s *serviceSuite) TestListTransactions_FilterSearchAndPages() {
	for i, desc := range []string{"Coffee beans", "Monthly rent", "Coffee with team", "Salary"} {
		req := txnReq(domain.Expense, domain.Money(100*(i+1)), "")
		req.Description = desc
		req.Date = time.Date(2024, 5, 10+i, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)
		if desc == "Salary" {
			req.Type, req.Category, req.Division = domain.Income, "Salary", domain.Office
		}
		_, err := s.transactions.CreateTransaction(s.ctx, s.userID, req)
		s.Require().NoError(err)
	}

	res, err := s.transactions.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{Search: "COFFEE"})
	s.Require().NoError(err)
	s.Require().Len(res.Transactions, 2)
	s.Equal("Coffee with team", res.Transactions[0].Description, "newest first")

	res, err = s.transactions.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{Type: "income", Division: "office"})
	s.Require().NoError(err)
	s.Len(res.Transactions, 1)

	res, err = s.transactions.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{StartDate: "2024-05-11", EndDate: "2024-05-12"})
	s.Require().NoError(err)
	s.Len(res.Transactions, 2, "date range is inclusive on both ends")

	var seen int
	params := dto.ListTransactionsParams{Limit: 3}
	for {
		page, err := s.transactions.ListTransactions(s.ctx, s.userID, params)
		s.Require().NoError(err)
		seen += len(page.Transactions)
		if page.NextToken == nil {
			break
		}
		params.NextToken = *page.NextToken
	}
	s.Equal(4, seen)

	days, err := s.transactions.ListTransactionsByDay(s.ctx, s.userID, dto.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Require().Len(days, 4)
	s.Equal("2024-05-13", days[0].Date)

	_, err = s.transactions.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{Type: "refund"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

// Any sequence of operations leaves every balance equal to its initial
// balance plus the signed sum of live transactions and transfers.
func (s *serviceSuite) TestBalanceConservation() {
	rng := rand.New(rand.NewSource(42))
	accounts := []string{s.newAccount("A", 5000), s.newAccount("B", 0), s.newAccount("C", -250)}
	initial := map[string]domain.Money{accounts[0]: 5000, accounts[1]: 0, accounts[2]: -250}

	var live []string
	for i := 0; i < 200; i++ {
		acc := accounts[rng.Intn(len(accounts))]
		typ := domain.Income
		if rng.Intn(2) == 0 {
			typ = domain.Expense
		}
		amount := domain.Money(rng.Intn(10000) + 1)

		switch op := rng.Intn(4); {
		case op == 0 || len(live) == 0:
			res, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(typ, amount, acc))
			s.Require().NoError(err)
			live = append(live, res.TransactionID)
		case op == 1:
			id := live[rng.Intn(len(live))]
			_, err := s.transactions.UpdateTransaction(s.ctx, s.userID, id, dto.UpdateTransactionRequest(txnReq(typ, amount, acc)))
			s.Require().NoError(err)
		case op == 2:
			idx := rng.Intn(len(live))
			s.Require().NoError(s.transactions.DeleteTransaction(s.ctx, s.userID, live[idx]))
			live = append(live[:idx], live[idx+1:]...)
		default:
			to := accounts[(rng.Intn(2)+1+indexOf(accounts, acc))%len(accounts)]
			_, err := s.transfers.TransferMoney(s.ctx, s.userID, dto.CreateTransferRequest{FromAccountID: acc, ToAccountID: to, Amount: dto.Amount(amount)})
			s.Require().NoError(err)
		}
	}

	expected := map[string]domain.Money{}
	for id, v := range initial {
		expected[id] = v
	}
	all, err := s.transactions.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{})
	s.Require().NoError(err)
	for _, t := range all.Transactions {
		if t.AccountID == nil {
			continue
		}
		if t.Type == domain.Income {
			expected[*t.AccountID] += t.Amount.Money()
		} else {
			expected[*t.AccountID] -= t.Amount.Money()
		}
	}
	transfers, err := s.transfers.ListTransfers(s.ctx, s.userID, "")
	s.Require().NoError(err)
	for _, t := range transfers {
		expected[t.FromAccountID] -= t.Amount
		expected[t.ToAccountID] += t.Amount
	}

	for _, id := range accounts {
		s.Equal(expected[id], s.balance(id), "account %s", id)
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (s *serviceSuite) TestConcurrentMutationsOnOneAccount() {
	acc := s.newAccount("Shared", 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			typ := domain.Income
			if i%2 == 1 {
				typ = domain.Expense
			}
			_, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(typ, 100, acc))
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	s.Equal(domain.Money(0), s.balance(acc))
}
