package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Content  string     `json:"content" validate:"required"`
	NoteId   uuid.UUID  `json:"note_id" validate:"required"`
	ParentId *uuid.UUID `json:"parent_id"`
}

// CommentNode is one node of the materialized reply forest. Children are
// ordered oldest-first; the root sequence is newest-first.
type CommentNode struct {
	Id        uuid.UUID      `json:"id"`
	Content   string         `json:"content"`
	ParentId  *uuid.UUID     `json:"parent_id"`
	User      UserSummary    `json:"user"`
	Children  []*CommentNode `json:"children"`
	CreatedAt time.Time      `json:"created_at"`
}
