package domain

import "time"

// Comment belongs to exactly one post. PostID and UserID are set at
// creation and never change.
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Username  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID implements Owned.
func (c *Comment) OwnerID() int64 {
	return c.UserID
}
