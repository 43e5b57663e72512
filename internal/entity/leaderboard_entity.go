package entity

import "github.com/google/uuid"

// LeaderboardRow is one aggregated row out of the ranking queries, before
// rank positions are assigned.
type LeaderboardRow struct {
	UserId    uuid.UUID
	Name      string
	AvatarUrl *string
	Metric    int64
}
