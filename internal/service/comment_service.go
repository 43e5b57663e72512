package service

import (
	"context"
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

type ICommentService interface {
	Create(ctx context.Context, externalUserId string, req *dto.CreateCommentRequest) (*dto.CommentNode, error)
	List(ctx context.Context, noteId uuid.UUID) ([]*dto.CommentNode, error)
}

type commentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	maxDepth       int
	logger         logger.ILogger
}

func NewCommentService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	maxDepth int,
	log logger.ILogger,
) ICommentService {
	return &commentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		maxDepth:       maxDepth,
		logger:         log,
	}
}

func (s *commentService) Create(ctx context.Context, externalUserId string, req *dto.CreateCommentRequest) (*dto.CommentNode, error) {
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

	if req.ParentId != nil {
		parent, err := uow.CommentRepository().FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, apperr.NewInternal(err)
		}
		if parent == nil || parent.NoteId != note.Id {
			return nil, apperr.NewNotFound("parent comment not found")
		}
	}

	comment := entity.Comment{
		Id:        uuid.New(),
		Content:   req.Content,
		NoteId:    note.Id,
		UserId:    user.Id,
		ParentId:  req.ParentId,
		CreatedAt: time.Now(),
	}
	if err := uow.CommentRepository().Create(ctx, &comment); err != nil {
		return nil, apperr.NewInternal(err)
	}

	s.publishEvent(ctx, dto.EventCommentCreated, map[string]interface{}{
		"comment_id": comment.Id,
		"note_id":    note.Id,
		"owner_id":   note.UserId,
		"user_id":    user.Id,
	})

	return &dto.CommentNode{
		Id:        comment.Id,
		Content:   comment.Content,
		ParentId:  comment.ParentId,
		User:      userSummary(user),
		Children:  []*dto.CommentNode{},
		CreatedAt: comment.CreatedAt,
	}, nil
}

// List loads every comment of a note in one query and assembles the reply
// forest in memory.
func (s *commentService) List(ctx context.Context, noteId uuid.UUID) ([]*dto.CommentNode, error) {
	if noteId == uuid.Nil {
		return nil, apperr.NewValidation("note id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	authors, err := s.loadCommentAuthors(ctx, uow, comments)
	if err != nil {
		return nil, err
	}

	return BuildCommentForest(comments, authors, s.maxDepth), nil
}

func (s *commentService) loadCommentAuthors(ctx context.Context, uow unitofwork.UnitOfWork, comments []*entity.Comment) (map[uuid.UUID]dto.UserSummary, error) {
	idSet := make(map[uuid.UUID]struct{}, len(comments))
	ids := make([]uuid.UUID, 0, len(comments))
	for _, comment := range comments {
		if _, seen := idSet[comment.UserId]; !seen {
			idSet[comment.UserId] = struct{}{}
			ids = append(ids, comment.UserId)
		}
	}
	if len(ids) == 0 {
		return map[uuid.UUID]dto.UserSummary{}, nil
	}

	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	authors := make(map[uuid.UUID]dto.UserSummary, len(users))
	for _, user := range users {
		authors[user.Id] = userSummary(user)
	}
	return authors, nil
}

func (s *commentService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("CommentService", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
