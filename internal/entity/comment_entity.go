package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	Id        uuid.UUID
	Content   string
	NoteId    uuid.UUID
	UserId    uuid.UUID
	ParentId  *uuid.UUID
	CreatedAt time.Time
}
