package models

import "time"

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID   string    `db:"transaction_id"`
	UserID          string    `db:"user_id"`
	TransactionType string    `db:"transaction_type"`
	Amount          int64     `db:"amount"`
	Description     string    `db:"description"`
	Category        string    `db:"category"`
	Division        string    `db:"division"`
	TransactionDate time.Time `db:"transaction_date"`
	AccountID       *string   `db:"account_id"` // Nullable
	AuditFields
}

// Transfer is a row of the transfers table.
type Transfer struct {
	TransferID    string    `db:"transfer_id"`
	UserID        string    `db:"user_id"`
	FromAccountID string    `db:"from_account_id"`
	ToAccountID   string    `db:"to_account_id"`
	Amount        int64     `db:"amount"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}
