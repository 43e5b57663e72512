package implementation

import (
	"context"
	"errors"

	"noteverse-be/internal/entity"
	"noteverse-be/internal/mapper"
	"noteverse-be/internal/model"
	"noteverse-be/internal/repository/contract"
	"noteverse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpvoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UpvoteMapper
}

func NewUpvoteRepository(db *gorm.DB) contract.UpvoteRepository {
	return &UpvoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewUpvoteMapper(),
	}
}

func (r *UpvoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UpvoteRepositoryImpl) Create(ctx context.Context, upvote *entity.Upvote) error {
	m := r.mapper.ToModel(upvote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*upvote = *r.mapper.ToEntity(m)
	return nil
}

func (r *UpvoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Upvote{}, id)
	return res.RowsAffected, res.Error
}

func (r *UpvoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Upvote, error) {
	var m model.Upvote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UpvoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Upvote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
