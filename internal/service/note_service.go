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

const notePageSize = 10

type INoteService interface {
	Create(ctx context.Context, externalUserId string, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	List(ctx context.Context, req *dto.ListNotesRequest) (*dto.ListNotesResponse, error)
	ListMine(ctx context.Context, externalUserId string) ([]*dto.NoteSummary, error)
	Show(ctx context.Context, externalUserId string, id uuid.UUID) (*dto.ShowNoteResponse, error)
	Update(ctx context.Context, externalUserId string, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Patch(ctx context.Context, externalUserId string, req *dto.PatchNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, externalUserId string, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	commentService   ICommentService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	commentService ICommentService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		commentService:   commentService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *noteService) Create(ctx context.Context, externalUserId string, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return nil, err
	}

	visibility := entity.NoteVisibilityPrivate
	if req.IsPublic {
		visibility = entity.NoteVisibilityPublic
	}

	note := entity.Note{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ImageUrl:    req.ImageUrl,
		PdfUrl:      req.PdfUrl,
		Category:    req.Category,
		Visibility:  visibility,
		UserId:      user.Id,
		CreatedAt:   time.Now(),
	}
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperr.NewInternal(err)
	}

	s.publishEvent(ctx, dto.EventNoteCreated, map[string]interface{}{
		"note_id":  note.Id,
		"title":    note.Title,
		"user_id":  user.Id,
		"owner_id": user.Id,
	})
	s.invalidateLeaderboard(ctx, "note created")

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) List(ctx context.Context, req *dto.ListNotesRequest) (*dto.ListNotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}

	filters := noteListFilters(req)

	listSpecs := append([]specification.Specification{}, filters...)
	listSpecs = append(listSpecs,
		noteSortSpec(req.Sort),
		specification.Pagination{Limit: notePageSize, Offset: (page - 1) * notePageSize},
	)

	notes, err := uow.NoteRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	total, err := uow.NoteRepository().Count(ctx, filters...)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	authors, err := s.loadAuthors(ctx, uow, notes)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.NoteSummary, 0, len(notes))
	for _, note := range notes {
		summaries = append(summaries, noteSummary(note, authors[note.UserId]))
	}

	return &dto.ListNotesResponse{
		Notes:   summaries,
		HasMore: hasMoreNotes(page, notePageSize, total),
	}, nil
}

// noteListFilters builds the WHERE side of the public listing. Private notes
// never show up here; search and category narrow further.
func noteListFilters(req *dto.ListNotesRequest) []specification.Specification {
	filters := []specification.Specification{specification.PublicOnly{}}
	if req.Search != "" {
		filters = append(filters, specification.SearchTitleOrDescription{Query: req.Search})
	}
	if req.Category != "" {
		filters = append(filters, specification.ByCategory{Category: req.Category})
	}
	return filters
}

// noteSortSpec maps the public sort keys onto columns. Anything unknown means
// newest-first, like the original listing.
func noteSortSpec(sortBy string) specification.Specification {
	switch sortBy {
	case "popular":
		return specification.OrderBy{Field: "upvotes", Desc: true}
	case "oldest":
		return specification.OrderBy{Field: "created_at", Desc: false}
	default:
		return specification.OrderBy{Field: "created_at", Desc: true}
	}
}

func hasMoreNotes(page, pageSize int, total int64) bool {
	return int64(page*pageSize) < total
}

func (s *noteService) ListMine(ctx context.Context, externalUserId string) ([]*dto.NoteSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return nil, err
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: user.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	summaries := make([]*dto.NoteSummary, 0, len(notes))
	for _, note := range notes {
		summaries = append(summaries, noteSummary(note, userSummary(user)))
	}
	return summaries, nil
}

func (s *noteService) Show(ctx context.Context, externalUserId string, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	if id == uuid.Nil {
		return nil, apperr.NewValidation("note id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	if note == nil {
		return nil, apperr.NewNotFound("note not found")
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: note.UserId})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	comments, err := s.commentService.List(ctx, note.Id)
	if err != nil {
		return nil, err
	}

	// Live row count, not the denormalized counter: the detail view is where
	// drift would be most visible.
	upvotes, err := uow.UpvoteRepository().Count(ctx, specification.ByNoteID{NoteID: note.Id})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	isUpvoted := false
	if externalUserId != "" {
		caller, err := uow.UserRepository().FindOne(ctx, specification.ByExternalID{ExternalID: externalUserId})
		if err != nil {
			return nil, apperr.NewInternal(err)
		}
		if caller != nil {
			existing, err := uow.UpvoteRepository().FindOne(ctx, specification.ByNoteAndUser{NoteID: note.Id, UserID: caller.Id})
			if err != nil {
				return nil, apperr.NewInternal(err)
			}
			isUpvoted = existing != nil
		}
	}

	return &dto.ShowNoteResponse{
		Id:          note.Id,
		Title:       note.Title,
		Description: note.Description,
		ImageUrl:    note.ImageUrl,
		PdfUrl:      note.PdfUrl,
		Category:    note.Category,
		Visibility:  note.Visibility,
		Upvotes:     int(upvotes),
		IsUpvoted:   isUpvoted,
		User:        userSummary(owner),
		Comments:    comments,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}, nil
}

func (s *noteService) Update(ctx context.Context, externalUserId string, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.ownedNote(ctx, uow, externalUserId, req.Id)
	if err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Description = req.Description
	if req.ImageUrl != "" {
		note.ImageUrl = req.ImageUrl
	}
	if req.PdfUrl != "" {
		note.PdfUrl = req.PdfUrl
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperr.NewInternal(err)
	}
	return &dto.UpdateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) Patch(ctx context.Context, externalUserId string, req *dto.PatchNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.ownedNote(ctx, uow, externalUserId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Description != nil {
		note.Description = *req.Description
	}
	if req.PdfUrl != nil {
		note.PdfUrl = *req.PdfUrl
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperr.NewInternal(err)
	}
	return &dto.UpdateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) Delete(ctx context.Context, externalUserId string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.ownedNote(ctx, uow, externalUserId, id)
	if err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return apperr.NewInternal(err)
	}
	s.invalidateLeaderboard(ctx, "note deleted")
	return nil
}

// ownedNote loads a note and checks the caller owns it. Foreign notes come
// back as NotFound rather than Forbidden so note ids are not probeable.
func (s *noteService) ownedNote(ctx context.Context, uow unitofwork.UnitOfWork, externalUserId string, id uuid.UUID) (*entity.Note, error) {
	if id == uuid.Nil {
		return nil, apperr.NewValidation("note id is required")
	}
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return nil, err
	}

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: user.Id},
	)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	if note == nil {
		return nil, apperr.NewNotFound("note not found")
	}
	return note, nil
}

func (s *noteService) loadAuthors(ctx context.Context, uow unitofwork.UnitOfWork, notes []*entity.Note) (map[uuid.UUID]dto.UserSummary, error) {
	idSet := make(map[uuid.UUID]struct{}, len(notes))
	ids := make([]uuid.UUID, 0, len(notes))
	for _, note := range notes {
		if _, seen := idSet[note.UserId]; !seen {
			idSet[note.UserId] = struct{}{}
			ids = append(ids, note.UserId)
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

func noteSummary(note *entity.Note, author dto.UserSummary) *dto.NoteSummary {
	return &dto.NoteSummary{
		Id:          note.Id,
		Title:       note.Title,
		Description: note.Description,
		ImageUrl:    note.ImageUrl,
		PdfUrl:      note.PdfUrl,
		Category:    note.Category,
		Visibility:  note.Visibility,
		Upvotes:     note.Upvotes,
		User:        author,
		CreatedAt:   note.CreatedAt,
	}
}

func (s *noteService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	// Notifications are auxiliary; the request already succeeded.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("NoteService", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *noteService) invalidateLeaderboard(ctx context.Context, reason string) {
	if s.publisherService == nil {
		return
	}
	payload, _ := json.Marshal(InvalidateLeaderboardMessage{Reason: reason})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("NoteService", "failed to queue leaderboard invalidation", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
	}
}
