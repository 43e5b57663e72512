package service

import (
	"context"
	"encoding/json"
	"time"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/entity"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/logger"
	"noteverse-be/internal/repository/specification"
	"noteverse-be/internal/repository/unitofwork"
	"noteverse-be/pkg/events"
	pktNats "noteverse-be/pkg/nats"

	"github.com/google/uuid"
)

type IUpvoteService interface {
	Toggle(ctx context.Context, externalUserId string, req *dto.ToggleUpvoteRequest) (*dto.ToggleUpvoteResponse, error)
	Status(ctx context.Context, externalUserId string, noteId uuid.UUID) (*dto.UpvoteStatusResponse, error)
}

type upvoteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewUpvoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IUpvoteService {
	return &upvoteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// Toggle flips the caller's upvote on a note. The row change and the counter
// adjustment commit together, so the counter never drifts from the rows on
// this path.
func (s *upvoteService) Toggle(ctx context.Context, externalUserId string, req *dto.ToggleUpvoteRequest) (*dto.ToggleUpvoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return nil, err
	}

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	if note == nil {
		return nil, apperr.NewNotFound("note not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.NewInternal(err)
	}
	defer uow.Rollback()

	existing, err := uow.UpvoteRepository().FindOne(ctx, specification.ByNoteAndUser{NoteID: note.Id, UserID: user.Id})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	var upvotes int
	var isUpvoted bool
	if existing != nil {
		affected, err := uow.UpvoteRepository().Delete(ctx, existing.Id)
		if err != nil {
			return nil, apperr.NewInternal(err)
		}
		if affected > 0 {
			upvotes, err = uow.NoteRepository().AdjustUpvotes(ctx, note.Id, -1)
			if err != nil {
				return nil, apperr.NewInternal(err)
			}
		} else {
			// A concurrent toggle removed the row between our read and the
			// delete. It also adjusted the counter, so decrementing here as
			// well would drag it below the row count.
			fresh, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
			if err != nil {
				return nil, apperr.NewInternal(err)
			}
			if fresh != nil {
				upvotes = fresh.Upvotes
			}
		}
		isUpvoted = false
	} else {
		upvote := entity.Upvote{
			Id:        uuid.New(),
			NoteId:    note.Id,
			UserId:    user.Id,
			CreatedAt: time.Now(),
		}
		if err := uow.UpvoteRepository().Create(ctx, &upvote); err != nil {
			return nil, apperr.NewInternal(err)
		}
		upvotes, err = uow.NoteRepository().AdjustUpvotes(ctx, note.Id, 1)
		if err != nil {
			return nil, apperr.NewInternal(err)
		}
		isUpvoted = true
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.NewInternal(err)
	}

	if isUpvoted {
		s.publishEvent(ctx, dto.EventNoteUpvoted, map[string]interface{}{
			"note_id":  note.Id,
			"owner_id": note.UserId,
			"user_id":  user.Id,
			"upvotes":  upvotes,
		})
	}
	s.invalidateLeaderboard(ctx, "upvote toggled")

	return &dto.ToggleUpvoteResponse{Upvotes: upvotes, IsUpvoted: isUpvoted}, nil
}

// Status reports whether the caller has upvoted the note. Anonymous callers
// get false, never an error.
func (s *upvoteService) Status(ctx context.Context, externalUserId string, noteId uuid.UUID) (*dto.UpvoteStatusResponse, error) {
	if noteId == uuid.Nil {
		return nil, apperr.NewValidation("note id is required")
	}
	if externalUserId == "" {
		return &dto.UpvoteStatusResponse{IsUpvoted: false}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByExternalID{ExternalID: externalUserId})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	if user == nil {
		return &dto.UpvoteStatusResponse{IsUpvoted: false}, nil
	}

	existing, err := uow.UpvoteRepository().FindOne(ctx, specification.ByNoteAndUser{NoteID: noteId, UserID: user.Id})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	return &dto.UpvoteStatusResponse{IsUpvoted: existing != nil}, nil
}

func (s *upvoteService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("UpvoteService", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *upvoteService) invalidateLeaderboard(ctx context.Context, reason string) {
	if s.publisherService == nil {
		return
	}
	payload, _ := json.Marshal(InvalidateLeaderboardMessage{Reason: reason})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("UpvoteService", "failed to queue leaderboard invalidation", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
	}
}
