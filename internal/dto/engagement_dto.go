package dto

import (
	"time"

	"github.com/google/uuid"
)

type ToggleUpvoteRequest struct {
	NoteId uuid.UUID `json:"note_id" validate:"required"`
}

type ToggleUpvoteResponse struct {
	Upvotes   int  `json:"upvotes"`
	IsUpvoted bool `json:"is_upvoted"`
}

type UpvoteStatusResponse struct {
	IsUpvoted bool `json:"is_upvoted"`
}

type AddBookmarkRequest struct {
	NoteId uuid.UUID `json:"note_id" validate:"required"`
}

type RemoveBookmarkRequest struct {
	NoteId uuid.UUID `json:"note_id" validate:"required"`
}

type BookmarkResponse struct {
	Id        uuid.UUID    `json:"id"`
	Note      *NoteSummary `json:"note"`
	CreatedAt time.Time    `json:"created_at"`
}

type BookmarkStatusResponse struct {
	IsBookmarked bool `json:"is_bookmarked"`
}
