package domain

import "time"

// User is the domain model for registered board members.
// Accounts are immutable after signup; there is no profile edit path.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
