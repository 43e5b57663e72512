package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	ImageUrl    string    `gorm:"type:text;not null"`
	PdfUrl      string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Visibility  string    `gorm:"type:varchar(20);not null;default:'PUBLIC'"`
	// Denormalized counter. Only touched inside the upvote toggle transaction
	// so it stays equal to the matching upvote row count.
	Upvotes   int       `gorm:"not null;default:0"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}
