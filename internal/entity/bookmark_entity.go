package entity

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
}
