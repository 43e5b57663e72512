package service

import (
	"context"
	"encoding/json"
	"fmt"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/model"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/logger"
	"noteverse-be/internal/repository/unitofwork"
	"noteverse-be/pkg/events"
	pktNats "noteverse-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const notificationListLimit = 50

// NotificationSink receives notifications for live delivery. The websocket
// hub implements it; a nil sink means persist-only.
type NotificationSink interface {
	Deliver(userId uuid.UUID, payload []byte)
}

type INotificationService interface {
	// Run attaches the durable event consumer. It returns once subscribed;
	// deliveries are handled on the subscriber's goroutines.
	Run() error
	List(ctx context.Context, externalUserId string) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, externalUserId string, id uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	sink       NotificationSink
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *pktNats.Subscriber,
	sink NotificationSink,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		sink:       sink,
		logger:     log,
	}
}

func (s *notificationService) Run() error {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "no event subscriber configured, notifications disabled", nil)
		return nil
	}
	return s.subscriber.Subscribe("events.>", "notification-worker", s.handleEvent)
}

func (s *notificationService) handleEvent(ctx context.Context, event events.Event) error {
	data := event.Payload()

	var (
		recipient uuid.UUID
		title     string
		message   string
		ok        bool
	)

	switch event.EventType() {
	case dto.EventNoteUpvoted:
		recipient, ok = payloadUUID(data, "owner_id")
		title = "Your note got an upvote"
		message = "Someone upvoted one of your notes."
	case dto.EventCommentCreated:
		recipient, ok = payloadUUID(data, "owner_id")
		title = "New comment on your note"
		message = "Someone commented on one of your notes."
	case dto.EventUserCreated:
		recipient, ok = payloadUUID(data, "user_id")
		title = "Welcome to NoteVerse"
		message = "Upload your first note to get started."
	default:
		return nil
	}
	if !ok {
		s.logger.Warn("NotificationService", "event payload missing recipient", map[string]interface{}{
			"event": event.EventType(),
		})
		return nil
	}

	// Actors do not get notified about their own actions.
	if actor, has := payloadUUID(data, "user_id"); has && event.EventType() != dto.EventUserCreated && actor == recipient {
		return nil
	}

	metadata, err := json.Marshal(data)
	if err != nil {
		metadata = []byte("{}")
	}

	notification := model.Notification{
		Id:       uuid.New(),
		UserId:   recipient,
		TypeCode: event.EventType(),
		Title:    title,
		Message:  message,
		Metadata: datatypes.JSON(metadata),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, &notification); err != nil {
		return fmt.Errorf("persist notification: %w", err)
	}

	if s.sink != nil {
		if payload, err := json.Marshal(toNotificationResponse(&notification)); err == nil {
			s.sink.Deliver(recipient, payload)
		}
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, externalUserId string) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return nil, err
	}

	rows, err := uow.NotificationRepository().ListByUser(ctx, user.Id, notificationListLimit)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toNotificationResponse(row))
	}
	return responses, nil
}

func (s *notificationService) MarkRead(ctx context.Context, externalUserId string, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.NewValidation("notification id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return err
	}

	if err := uow.NotificationRepository().MarkRead(ctx, id, user.Id); err != nil {
		return apperr.NewInternal(err)
	}
	return nil
}

func toNotificationResponse(n *model.Notification) *dto.NotificationResponse {
	var metadata map[string]any
	if len(n.Metadata) > 0 {
		_ = json.Unmarshal(n.Metadata, &metadata)
	}
	return &dto.NotificationResponse{
		Id:        n.Id,
		TypeCode:  n.TypeCode,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// payloadUUID reads a uuid out of a decoded JSON payload. Values arrive as
// strings after the bus round-trip.
func payloadUUID(data map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, ok := data[key]
	if !ok {
		return uuid.Nil, false
	}
	switch v := raw.(type) {
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	case uuid.UUID:
		return v, true
	default:
		return uuid.Nil, false
	}
}
