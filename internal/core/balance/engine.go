// Package balance computes how transactions and transfers move account balances.
//
// Every mutation is expressed as a Changes set (account id to signed delta).
// Repositories lock the affected accounts, run Apply over the locked rows and
// persist the result together with the record in one unit of work.
package balance

import (
	"fmt"
	"sort"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// Changes maps account IDs to the signed amount their balance moves by.
type Changes map[string]domain.Money

// Add accumulates delta onto accountID.
func (c Changes) Add(accountID string, delta domain.Money) {
	if accountID == "" || delta == 0 {
		return
	}
	c[accountID] += delta
}

// Merge returns a new set holding the sum of c and other.
func (c Changes) Merge(other Changes) Changes {
	out := make(Changes, len(c)+len(other))
	for id, d := range c {
		out.Add(id, d)
	}
	for id, d := range other {
		out.Add(id, d)
	}
	return out
}

// AccountIDs returns the ids with a non-zero net delta, sorted so that
// callers can lock rows in a stable order.
func (c Changes) AccountIDs() []string {
	ids := make([]string, 0, len(c))
	for id, d := range c {
		if d != 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// IsZero reports whether applying c would change nothing.
func (c Changes) IsZero() bool {
	return len(c.AccountIDs()) == 0
}

// ApplyTransaction returns the effect of recording a transaction: +amount for
// income and -amount for expense on the linked account. No account, no effect.
func ApplyTransaction(accountID *string, txnType domain.TransactionType, amount domain.Money) Changes {
	c := Changes{}
	if accountID == nil || *accountID == "" {
		return c
	}
	if txnType == domain.Expense {
		c.Add(*accountID, -amount)
	} else {
		c.Add(*accountID, amount)
	}
	return c
}

// ReverseTransaction is the exact negation of ApplyTransaction.
func ReverseTransaction(accountID *string, txnType domain.TransactionType, amount domain.Money) Changes {
	c := Changes{}
	for id, d := range ApplyTransaction(accountID, txnType, amount) {
		c.Add(id, -d)
	}
	return c
}

// ForTransaction is ApplyTransaction for a whole record.
func ForTransaction(t domain.Transaction) Changes {
	return ApplyTransaction(t.AccountID, t.Type, t.Amount)
}

// Reconcile is the single change set of an update: the old effect reversed
// plus the new effect applied. Changing nothing that matters yields no deltas.
func Reconcile(old, next domain.Transaction) Changes {
	return ReverseTransaction(old.AccountID, old.Type, old.Amount).
		Merge(ApplyTransaction(next.AccountID, next.Type, next.Amount))
}

// Transfer returns the effect of moving amount from one account to another.
func Transfer(fromAccountID, toAccountID string, amount domain.Money) (Changes, error) {
	if fromAccountID == "" || toAccountID == "" {
		return nil, fmt.Errorf("%w: both accounts are required", apperrors.ErrInvalidTransfer)
	}
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrInvalidTransfer)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidTransfer)
	}
	c := Changes{}
	c.Add(fromAccountID, -amount)
	c.Add(toAccountID, amount)
	return c, nil
}

// ReverseTransfer undoes a recorded transfer.
func ReverseTransfer(t domain.Transfer) Changes {
	c := Changes{}
	c.Add(t.FromAccountID, t.Amount)
	c.Add(t.ToAccountID, -t.Amount)
	return c
}

// Apply computes the new state of every account touched by changes.
// It fails with apperrors.ErrAccountNotFound if any of them is missing from
// accounts. The input map is never modified; on error nothing is returned.
func Apply(accounts map[string]domain.Account, changes Changes) (map[string]domain.Account, error) {
	ids := changes.AccountIDs()
	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
		}
	}

	updated := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		acc := accounts[id]
		newBalance, err := acc.Balance.Add(changes[id])
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", id, err)
		}
		acc.Balance = newBalance
		updated[id] = acc
	}
	return updated, nil
}
