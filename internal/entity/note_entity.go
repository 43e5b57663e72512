package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	NoteVisibilityPublic  = "PUBLIC"
	NoteVisibilityPrivate = "PRIVATE"
)

type Note struct {
	Id          uuid.UUID
	Title       string
	Description string
	ImageUrl    string
	PdfUrl      string
	Category    string
	Visibility  string
	Upvotes     int
	UserId      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
