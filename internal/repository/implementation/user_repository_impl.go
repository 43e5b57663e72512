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

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var models []*model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type leaderboardRow struct {
	UserId    uuid.UUID
	Name      string
	AvatarUrl *string
	Metric    int64
}

func (r *UserRepositoryImpl) TopContributors(ctx context.Context, limit int) ([]*entity.LeaderboardRow, error) {
	var rows []leaderboardRow
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.id AS user_id, users.name, users.avatar_url, COUNT(notes.id) AS metric").
		Joins("JOIN notes ON notes.user_id = users.id AND notes.deleted_at IS NULL").
		Where("users.deleted_at IS NULL").
		Group("users.id, users.name, users.avatar_url").
		Having("COUNT(notes.id) > 0").
		Order("metric DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toLeaderboardRows(rows), nil
}

func (r *UserRepositoryImpl) TopUpvoted(ctx context.Context, limit int) ([]*entity.LeaderboardRow, error) {
	var rows []leaderboardRow
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.id AS user_id, users.name, users.avatar_url, COALESCE(SUM(notes.upvotes), 0) AS metric").
		Joins("JOIN notes ON notes.user_id = users.id AND notes.deleted_at IS NULL").
		Where("users.deleted_at IS NULL").
		Group("users.id, users.name, users.avatar_url").
		Having("COALESCE(SUM(notes.upvotes), 0) > 0").
		Order("metric DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toLeaderboardRows(rows), nil
}

func toLeaderboardRows(rows []leaderboardRow) []*entity.LeaderboardRow {
	out := make([]*entity.LeaderboardRow, len(rows))
	for i, row := range rows {
		out[i] = &entity.LeaderboardRow{
			UserId:    row.UserId,
			Name:      row.Name,
			AvatarUrl: row.AvatarUrl,
			Metric:    row.Metric,
		}
	}
	return out
}
