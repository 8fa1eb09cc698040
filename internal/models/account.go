package models

// Account is a row of the accounts table. Money columns hold minor units.
type Account struct {
	AccountID      string `db:"account_id"`
	UserID         string `db:"user_id"`
	Name           string `db:"name"`
	AccountType    string `db:"account_type"`
	InitialBalance int64  `db:"initial_balance"`
	Balance        int64  `db:"balance"`
	AuditFields
}
