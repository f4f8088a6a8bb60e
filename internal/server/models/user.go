package models

import "time"

// User is the account record persisted in the users table.
//
// The JSON tags describe the outward view returned by signup, login, and
// getMe: the password hash and creation timestamp never leave the server.
// Followers, Following, and ProfileImg are denormalized social fields the
// auth flows pass through unchanged.
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	Followers    []string  `json:"followers"`
	Following    []string  `json:"following"`
	ProfileImg   string    `json:"profileImg"`
	CreatedAt    time.Time `json:"-"`
}
