package domain

import "time"

// Post is the aggregate for board entries.
type Post struct {
	ID        int64
	UserID    int64
	Username  string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID implements Owned.
func (p *Post) OwnerID() int64 {
	return p.UserID
}
