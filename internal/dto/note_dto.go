package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageUrl    string `json:"image_url" validate:"required,url"`
	PdfUrl      string `json:"pdf_url" validate:"required,url"`
	Category    string `json:"category" validate:"required"`
	IsPublic    bool   `json:"is_public"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type NoteSummary struct {
	Id          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageUrl    string      `json:"image_url"`
	PdfUrl      string      `json:"pdf_url"`
	Category    string      `json:"category"`
	Visibility  string      `json:"visibility"`
	Upvotes     int         `json:"upvotes"`
	User        UserSummary `json:"user"`
	CreatedAt   time.Time   `json:"created_at"`
}

type ListNotesRequest struct {
	Search   string
	Category string
	Sort     string // recent | oldest | popular
	Page     int
}

type ListNotesResponse struct {
	Notes   []*NoteSummary `json:"notes"`
	HasMore bool           `json:"has_more"`
}

type ShowNoteResponse struct {
	Id          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ImageUrl    string         `json:"image_url"`
	PdfUrl      string         `json:"pdf_url"`
	Category    string         `json:"category"`
	Visibility  string         `json:"visibility"`
	Upvotes     int            `json:"upvotes"`
	IsUpvoted   bool           `json:"is_upvoted"`
	User        UserSummary    `json:"user"`
	Comments    []*CommentNode `json:"comments"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at"`
}

type UpdateNoteRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageUrl    string `json:"image_url" validate:"omitempty,url"`
	PdfUrl      string `json:"pdf_url" validate:"omitempty,url"`
}

// PatchNoteRequest is the partial update used by the editor modal: nil fields
// are left untouched.
type PatchNoteRequest struct {
	Id          uuid.UUID
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PdfUrl      *string `json:"pdf_url" validate:"omitempty,url"`
}

type UpdateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}
