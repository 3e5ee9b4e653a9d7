package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventPostCreated    EventType = "post_created"
	EventPostUpdated    EventType = "post_updated"
	EventPostDeleted    EventType = "post_deleted"
	EventCommentAdded   EventType = "comment_added"
	EventCommentDeleted EventType = "comment_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// PostCreatedPayload payload.
type PostCreatedPayload struct {
	PostID int64  `json:"post_id"`
	Title  string `json:"title"`
}

// PostUpdatedPayload payload.
type PostUpdatedPayload struct {
	PostID int64  `json:"post_id"`
	Title  string `json:"title"`
}

// PostDeletedPayload payload.
type PostDeletedPayload struct {
	PostID int64 `json:"post_id"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID   int64  `json:"comment_id"`
	PostID      int64  `json:"post_id"`
	BodyPreview string `json:"body_preview"`
}

// CommentDeletedPayload payload.
type CommentDeletedPayload struct {
	CommentID int64 `json:"comment_id"`
	PostID    int64 `json:"post_id"`
}
