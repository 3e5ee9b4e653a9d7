package domain

import "time"

// Token represents issued authentication token metadata. Tokens are
// stateless JWTs; nothing is persisted for them.
type Token struct {
	SubjectID int64
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
