package contract

import (
	"context"

	"noteverse-be/internal/entity"
	"noteverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UpvoteRepository interface {
	Create(ctx context.Context, upvote *entity.Upvote) error
	// Delete reports how many rows were removed so callers can tell a real
	// removal from a row another transaction already deleted.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Upvote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
