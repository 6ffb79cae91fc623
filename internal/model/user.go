package model

import "time"

// User represents a registered shopper or admin.
//
// Password is stored and compared in clear text. That mirrors the
// behaviour this store inherits; hardening it is an explicit non-goal.
// Handlers must strip the field before writing a user to a response.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns a copy of the user safe for API responses.
func (u User) Public() User {
	u.Password = ""
	return u
}
