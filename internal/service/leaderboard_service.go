package service

import (
	"context"
	"encoding/json"
	"time"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/entity"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/logger"
	"noteverse-be/internal/repository/unitofwork"

	"github.com/redis/go-redis/v9"
)

const (
	LeaderboardKindContributors = "contributors"
	LeaderboardKindUpvoted      = "upvoted"

	leaderboardSize     = 10
	leaderboardCacheTTL = 60 * time.Second
)

var leaderboardCacheKeys = map[string]string{
	LeaderboardKindContributors: "leaderboard:contributors",
	LeaderboardKindUpvoted:      "leaderboard:upvoted",
}

type ILeaderboardService interface {
	Top(ctx context.Context, kind string) ([]*dto.LeaderboardEntry, error)
	Invalidate(ctx context.Context) error
}

type leaderboardService struct {
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client
	logger     logger.ILogger
}

func NewLeaderboardService(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client, log logger.ILogger) ILeaderboardService {
	return &leaderboardService{
		uowFactory: uowFactory,
		rdb:        rdb,
		logger:     log,
	}
}

// Top computes one of the two ranked lists. Unknown kinds fall back to
// "upvoted", matching the original API. Results are cached briefly in redis;
// a cold or broken cache just means hitting the database.
func (s *leaderboardService) Top(ctx context.Context, kind string) ([]*dto.LeaderboardEntry, error) {
	if kind != LeaderboardKindContributors {
		kind = LeaderboardKindUpvoted
	}

	if cached := s.fromCache(ctx, kind); cached != nil {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var rows []*entity.LeaderboardRow
	var err error
	if kind == LeaderboardKindContributors {
		rows, err = uow.UserRepository().TopContributors(ctx, leaderboardSize)
	} else {
		rows, err = uow.UserRepository().TopUpvoted(ctx, leaderboardSize)
	}
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	entries := RankLeaderboardRows(rows, kind)
	s.toCache(ctx, kind, entries)
	return entries, nil
}

// RankLeaderboardRows assigns 1-based ranks by list position. The repository
// already ordered and filtered the rows; ties keep the query's stable order.
func RankLeaderboardRows(rows []*entity.LeaderboardRow, kind string) []*dto.LeaderboardEntry {
	entries := make([]*dto.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entry := &dto.LeaderboardEntry{
			Rank: i + 1,
			User: dto.UserSummary{
				Id:        row.UserId,
				Name:      row.Name,
				AvatarUrl: row.AvatarUrl,
			},
		}
		if kind == LeaderboardKindContributors {
			entry.TotalNotes = row.Metric
		} else {
			entry.TotalUpvotes = row.Metric
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *leaderboardService) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	keys := make([]string, 0, len(leaderboardCacheKeys))
	for _, key := range leaderboardCacheKeys {
		keys = append(keys, key)
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func (s *leaderboardService) fromCache(ctx context.Context, kind string) []*dto.LeaderboardEntry {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, leaderboardCacheKeys[kind]).Bytes()
	if err != nil {
		return nil
	}
	var entries []*dto.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

func (s *leaderboardService) toCache(ctx context.Context, kind string, entries []*dto.LeaderboardEntry) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, leaderboardCacheKeys[kind], raw, leaderboardCacheTTL).Err(); err != nil {
		s.logger.Warn("Leaderboard", "cache write failed", map[string]interface{}{"error": err.Error()})
	}
}
