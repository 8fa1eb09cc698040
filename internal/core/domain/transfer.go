package domain

import "time"

// Transfer moves money from one account to another.
type Transfer struct {
	TransferID    string    `json:"transferID"`
	UserID        string    `json:"userID"`
	FromAccountID string    `json:"fromAccountID"`
	ToAccountID   string    `json:"toAccountID"`
	Amount        Money     `json:"amount"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Involves reports whether accountID is either side of the transfer.
func (t Transfer) Involves(accountID string) bool {
	return t.FromAccountID == accountID || t.ToAccountID == accountID
}
