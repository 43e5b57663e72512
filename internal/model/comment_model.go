package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is append-only: no edit, no delete. ParentId = nil marks a root
// comment; replies point at a pre-existing comment on the same note, so the
// parent pointers always form a forest.
type Comment struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string     `gorm:"type:text;not null"`
	NoteId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentId  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
