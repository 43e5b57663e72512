package entity

import (
	"time"

	"github.com/google/uuid"
)

type Upvote struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
}
