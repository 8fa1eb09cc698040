package models

// Category is a row of the categories table.
type Category struct {
	CategoryID   string `db:"category_id"`
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	CategoryType string `db:"category_type"`
	Color        string `db:"color"`
	IsDefault    bool   `db:"is_default"`
	AuditFields
}
