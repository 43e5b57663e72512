package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	Id        uuid.UUID      `json:"id"`
	TypeCode  string         `json:"type_code"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}

// Event bus payloads. They ride NATS as JSON maps; these constants name the
// subjects the notification worker matches on.
const (
	EventUserCreated    = "USER_CREATED"
	EventNoteCreated    = "NOTE_CREATED"
	EventNoteUpvoted    = "NOTE_UPVOTED"
	EventCommentCreated = "COMMENT_CREATED"
)
