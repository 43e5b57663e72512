package specification

import (
	"gorm.io/gorm"
)

// SearchTitleOrDescription is the note listing's case-insensitive search.
type SearchTitleOrDescription struct {
	Query string
}

func (s SearchTitleOrDescription) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}

// ByCategory filters notes by their category label.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// PublicOnly keeps notes visible to everyone.
type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("visibility = ?", "PUBLIC")
}
