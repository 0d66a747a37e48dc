package entity

import "strings"

// RegisteredUser is an account known to the storefront, keyed by its normalized email.
type RegisteredUser struct {
	Email        string `json:"email"`        // Lower-cased, trimmed email; the unique key.
	Username     string `json:"username"`     // Display name chosen at registration.
	PasswordHash string `json:"passwordHash"` // bcrypt hash of the password.
}

// NormalizeEmail lower-cases and trims an email so it can be used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
