package domain

// User represents a user of the application in the domain.
type User struct {
	UserID       string  `json:"userID"` // Primary Key (UUID)
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	PasswordHash string  `json:"-"`
	// GoogleSubject is the stable Google account id for users who signed in with Google.
	GoogleSubject *string `json:"-"`
	AuditFields
}

// GoogleUserInfo is the subset of Google's userinfo response the app needs.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
