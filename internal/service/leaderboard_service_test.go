package service

import (
	"testing"

	"noteverse-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankLeaderboardRows_Contributors(t *testing.T) {
	rows := []*entity.LeaderboardRow{
		{UserId: uuid.New(), Name: "Alice", Metric: 12},
		{UserId: uuid.New(), Name: "Bob", Metric: 7},
		{UserId: uuid.New(), Name: "Cara", Metric: 7},
	}

	entries := RankLeaderboardRows(rows, LeaderboardKindContributors)

	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank, "ties keep the query order")
	assert.Equal(t, int64(12), entries[0].TotalNotes)
	assert.Zero(t, entries[0].TotalUpvotes)
}

func TestRankLeaderboardRows_Upvoted(t *testing.T) {
	rows := []*entity.LeaderboardRow{
		{UserId: uuid.New(), Name: "Alice", Metric: 40},
	}

	entries := RankLeaderboardRows(rows, LeaderboardKindUpvoted)

	require.Len(t, entries, 1)
	assert.Equal(t, int64(40), entries[0].TotalUpvotes)
	assert.Zero(t, entries[0].TotalNotes)
}

func TestRankLeaderboardRows_Empty(t *testing.T) {
	entries := RankLeaderboardRows(nil, LeaderboardKindUpvoted)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}
