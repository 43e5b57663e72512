package contract

import (
	"context"

	"noteverse-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository works directly on the gorm model: notifications are
// an infrastructure concern of the realtime worker, not a mapped domain
// aggregate.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userId uuid.UUID, limit int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
}
