package specification

import "gorm.io/gorm"

// ByExternalID resolves a user by the identity provider's key.
type ByExternalID struct {
	ExternalID string
}

func (s ByExternalID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("external_id = ?", s.ExternalID)
}
