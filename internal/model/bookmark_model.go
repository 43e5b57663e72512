package model

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_note_user"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_note_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
