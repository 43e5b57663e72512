package service

import (
	"context"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/entity"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/repository/specification"
	"noteverse-be/internal/repository/unitofwork"
)

type IUserService interface {
	GetByExternalId(ctx context.Context, externalId string) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetByExternalId(ctx context.Context, externalId string) (*dto.UserResponse, error) {
	if externalId == "" {
		return nil, apperr.NewValidation("external id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByExternalID{ExternalID: externalId})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	if user == nil {
		return nil, apperr.NewNotFound("user not found")
	}

	return &dto.UserResponse{
		Id:         user.Id,
		ExternalId: user.ExternalId,
		Email:      user.Email,
		Name:       user.Name,
		AvatarUrl:  user.AvatarUrl,
		CreatedAt:  user.CreatedAt,
	}, nil
}

// resolveCaller maps the token subject to the local user row. Webhook
// provisioning can lag a first login, so a missing row is an auth failure,
// not a 404.
func resolveCaller(ctx context.Context, uow unitofwork.UnitOfWork, externalId string) (*entity.User, error) {
	if externalId == "" {
		return nil, apperr.NewAuth("authentication required")
	}
	user, err := uow.UserRepository().FindOne(ctx, specification.ByExternalID{ExternalID: externalId})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	if user == nil {
		return nil, apperr.NewAuth("unknown user")
	}
	return user, nil
}

func userSummary(user *entity.User) dto.UserSummary {
	if user == nil {
		return dto.UserSummary{}
	}
	return dto.UserSummary{
		Id:        user.Id,
		Name:      user.Name,
		AvatarUrl: user.AvatarUrl,
	}
}
