package contract

import (
	"context"

	"noteverse-be/internal/entity"
	"noteverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)

	// TopContributors returns users ranked by note count, highest first,
	// excluding users without notes.
	TopContributors(ctx context.Context, limit int) ([]*entity.LeaderboardRow, error)
	// TopUpvoted returns users ranked by the summed upvote counters of their
	// notes, highest first, excluding users whose notes total zero upvotes.
	TopUpvoted(ctx context.Context, limit int) ([]*entity.LeaderboardRow, error)
}
