package models

// User is a row of the users table.
type User struct {
	UserID        string  `db:"user_id"`
	Username      string  `db:"username"`
	Name          string  `db:"name"`
	Email         *string `db:"email"`
	PasswordHash  string  `db:"password_hash"`
	GoogleSubject *string `db:"google_subject"`
	AuditFields
}
