package entity

import "time"

// Session is the currently authenticated identity of one visitor.
// The zero value is a loaded but anonymous session.
type Session struct {
	Token         string    `json:"token,omitempty"`
	Email         string    `json:"email,omitempty"`
	Username      string    `json:"username,omitempty"`
	Authenticated bool      `json:"isAuthenticated"`
	IssuedAt      time.Time `json:"issuedAt,omitzero"`
}
