package service

import (
	"context"
	"encoding/json"
	"time"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/entity"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/logger"
	"noteverse-be/internal/pkg/mailer"
	"noteverse-be/internal/pkg/webhook"
	"noteverse-be/internal/repository/specification"
	"noteverse-be/internal/repository/unitofwork"
	"noteverse-be/pkg/events"
	pktNats "noteverse-be/pkg/nats"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	eventUserCreated = "user.created"
	eventUserUpdated = "user.updated"
	eventUserDeleted = "user.deleted"

	// Replayed deliveries inside the signature tolerance window are dropped
	// by message id.
	replayGuardTTL = 10 * time.Minute
)

type IWebhookService interface {
	HandleIdentityEvent(ctx context.Context, payload []byte, msgId, timestamp, signatures string) error
}

type webhookService struct {
	uowFactory       unitofwork.RepositoryFactory
	verifier         *webhook.Verifier
	emailService     mailer.IEmailService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	seenMessages     *gocache.Cache
	logger           logger.ILogger
}

func NewWebhookService(
	uowFactory unitofwork.RepositoryFactory,
	verifier *webhook.Verifier,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IWebhookService {
	return &webhookService{
		uowFactory:       uowFactory,
		verifier:         verifier,
		emailService:     emailService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		seenMessages:     gocache.New(replayGuardTTL, 2*replayGuardTTL),
		logger:           log,
	}
}

func (s *webhookService) HandleIdentityEvent(ctx context.Context, payload []byte, msgId, timestamp, signatures string) error {
	if err := s.verifier.Verify(payload, msgId, timestamp, signatures); err != nil {
		return err
	}

	if _, replayed := s.seenMessages.Get(msgId); replayed {
		s.logger.Warn("WebhookService", "dropping replayed delivery", map[string]interface{}{
			"message_id": msgId,
		})
		return nil
	}
	s.seenMessages.Set(msgId, struct{}{}, gocache.DefaultExpiration)

	var event dto.IdentityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return apperr.NewValidation("malformed webhook payload")
	}
	if event.Data.Id == "" {
		return apperr.NewValidation("webhook payload missing user id")
	}

	switch event.Type {
	case eventUserCreated:
		return s.handleUserCreated(ctx, event.Data)
	case eventUserUpdated:
		return s.handleUserUpdated(ctx, event.Data)
	case eventUserDeleted:
		return s.handleUserDeleted(ctx, event.Data)
	default:
		s.logger.Info("WebhookService", "ignoring unhandled event type", map[string]interface{}{
			"type": event.Type,
		})
		return nil
	}
}

func (s *webhookService) handleUserCreated(ctx context.Context, data dto.IdentityEventData) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByExternalID{ExternalID: data.Id})
	if err != nil {
		return apperr.NewInternal(err)
	}
	if existing != nil {
		// Redelivered create, nothing to do.
		return nil
	}

	email := data.PrimaryEmail()
	if email == "" {
		return apperr.NewValidation("webhook payload missing email address")
	}

	user := entity.User{
		Id:         uuid.New(),
		ExternalId: data.Id,
		Email:      email,
		Name:       data.FirstName,
		AvatarUrl:  avatarPtr(data.ImageUrl),
		CreatedAt:  time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return apperr.NewInternal(err)
	}

	s.publishEvent(ctx, dto.EventUserCreated, map[string]interface{}{
		"user_id":     user.Id,
		"external_id": user.ExternalId,
		"name":        user.Name,
	})

	if s.emailService != nil {
		// Mail must not hold up the webhook response.
		go func(email, name string) {
			if err := s.emailService.SendWelcome(email, name); err != nil {
				s.logger.Warn("WebhookService", "failed to send welcome email", map[string]interface{}{
					"email": email,
					"error": err.Error(),
				})
			}
		}(user.Email, user.Name)
	}
	return nil
}

func (s *webhookService) handleUserUpdated(ctx context.Context, data dto.IdentityEventData) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByExternalID{ExternalID: data.Id})
	if err != nil {
		return apperr.NewInternal(err)
	}
	if user == nil {
		// Update arrived before (or instead of) create; provision the row.
		return s.handleUserCreated(ctx, data)
	}

	email := data.PrimaryEmail()
	changed := false
	if email != "" && email != user.Email {
		user.Email = email
		changed = true
	}
	if data.FirstName != user.Name {
		user.Name = data.FirstName
		changed = true
	}
	if avatarChanged(user.AvatarUrl, data.ImageUrl) {
		user.AvatarUrl = avatarPtr(data.ImageUrl)
		changed = true
	}
	if !changed {
		return nil
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return apperr.NewInternal(err)
	}
	return nil
}

func (s *webhookService) handleUserDeleted(ctx context.Context, data dto.IdentityEventData) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByExternalID{ExternalID: data.Id})
	if err != nil {
		return apperr.NewInternal(err)
	}
	if user == nil {
		// Already gone; deletions are idempotent.
		return nil
	}

	if err := uow.UserRepository().Delete(ctx, user.Id); err != nil {
		return apperr.NewInternal(err)
	}
	s.invalidateLeaderboard(ctx, "user deleted")
	return nil
}

func avatarPtr(url string) *string {
	if url == "" {
		return nil
	}
	return &url
}

func avatarChanged(current *string, incoming string) bool {
	if current == nil {
		return incoming != ""
	}
	return *current != incoming
}

func (s *webhookService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("WebhookService", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *webhookService) invalidateLeaderboard(ctx context.Context, reason string) {
	if s.publisherService == nil {
		return
	}
	payload, _ := json.Marshal(InvalidateLeaderboardMessage{Reason: reason})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("WebhookService", "failed to queue leaderboard invalidation", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
	}
}
