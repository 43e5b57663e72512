package model

import (
	"time"

	"github.com/google/uuid"
)

type Upvote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_note_user"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_note_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Upvote) TableName() string {
	return "upvotes"
}
