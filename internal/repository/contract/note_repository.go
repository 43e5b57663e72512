package contract

import (
	"context"

	"noteverse-be/internal/entity"
	"noteverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AdjustUpvotes shifts the denormalized counter by delta and returns the
	// resulting value. Callers run it inside the toggle transaction so the
	// counter can never drift from the upvote row count.
	AdjustUpvotes(ctx context.Context, id uuid.UUID, delta int) (int, error)
}
