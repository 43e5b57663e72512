package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserSummary is the author projection embedded in notes, comments and
// leaderboard entries.
type UserSummary struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarUrl *string   `json:"avatar_url"`
}

type UserResponse struct {
	Id         uuid.UUID `json:"id"`
	ExternalId string    `json:"external_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AvatarUrl  *string   `json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
}
