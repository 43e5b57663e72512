package service

import (
	"context"
	"time"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/entity"
	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/repository/specification"
	"noteverse-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IBookmarkService interface {
	Add(ctx context.Context, externalUserId string, req *dto.AddBookmarkRequest) (*dto.BookmarkResponse, error)
	Remove(ctx context.Context, externalUserId string, noteId uuid.UUID) error
	List(ctx context.Context, externalUserId string) ([]*dto.BookmarkResponse, error)
	Status(ctx context.Context, externalUserId string, noteId uuid.UUID) (*dto.BookmarkStatusResponse, error)
}

type bookmarkService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBookmarkService(uowFactory unitofwork.RepositoryFactory) IBookmarkService {
	return &bookmarkService{
		uowFactory: uowFactory,
	}
}

func (s *bookmarkService) Add(ctx context.Context, externalUserId string, req *dto.AddBookmarkRequest) (*dto.BookmarkResponse, error) {
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

	existing, err := uow.BookmarkRepository().FindOne(ctx, specification.ByNoteAndUser{NoteID: note.Id, UserID: user.Id})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	if existing != nil {
		// Clients treat a duplicate as a bad request, not a conflict.
		return nil, &apperr.Error{
			Kind:    apperr.Duplicate,
			Message: "note already bookmarked",
			Status:  400,
		}
	}

	bookmark := entity.Bookmark{
		Id:        uuid.New(),
		NoteId:    note.Id,
		UserId:    user.Id,
		CreatedAt: time.Now(),
	}
	if err := uow.BookmarkRepository().Create(ctx, &bookmark); err != nil {
		return nil, apperr.NewInternal(err)
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: note.UserId})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	return &dto.BookmarkResponse{
		Id:        bookmark.Id,
		Note:      noteSummary(note, userSummary(owner)),
		CreatedAt: bookmark.CreatedAt,
	}, nil
}

func (s *bookmarkService) Remove(ctx context.Context, externalUserId string, noteId uuid.UUID) error {
	if noteId == uuid.Nil {
		return apperr.NewValidation("note id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return err
	}

	existing, err := uow.BookmarkRepository().FindOne(ctx, specification.ByNoteAndUser{NoteID: noteId, UserID: user.Id})
	if err != nil {
		return apperr.NewInternal(err)
	}
	if existing == nil {
		return apperr.NewNotFound("bookmark not found")
	}

	if err := uow.BookmarkRepository().Delete(ctx, existing.Id); err != nil {
		return apperr.NewInternal(err)
	}
	return nil
}

func (s *bookmarkService) List(ctx context.Context, externalUserId string) ([]*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return nil, err
	}

	bookmarks, err := uow.BookmarkRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: user.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	if len(bookmarks) == 0 {
		return []*dto.BookmarkResponse{}, nil
	}

	noteIds := make([]uuid.UUID, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		noteIds = append(noteIds, bookmark.NoteId)
	}
	notes, err := uow.NoteRepository().FindAll(ctx, specification.ByIDs{IDs: noteIds})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	notesById := make(map[uuid.UUID]*entity.Note, len(notes))
	for _, note := range notes {
		notesById[note.Id] = note
	}

	ownerIds := make([]uuid.UUID, 0, len(notes))
	seen := make(map[uuid.UUID]struct{}, len(notes))
	for _, note := range notes {
		if _, ok := seen[note.UserId]; !ok {
			seen[note.UserId] = struct{}{}
			ownerIds = append(ownerIds, note.UserId)
		}
	}
	owners := map[uuid.UUID]dto.UserSummary{}
	if len(ownerIds) > 0 {
		users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ownerIds})
		if err != nil {
			return nil, apperr.NewInternal(err)
		}
		for _, u := range users {
			owners[u.Id] = userSummary(u)
		}
	}

	responses := make([]*dto.BookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		note, ok := notesById[bookmark.NoteId]
		if !ok {
			// The note was soft-deleted after bookmarking.
			continue
		}
		responses = append(responses, &dto.BookmarkResponse{
			Id:        bookmark.Id,
			Note:      noteSummary(note, owners[note.UserId]),
			CreatedAt: bookmark.CreatedAt,
		})
	}
	return responses, nil
}

func (s *bookmarkService) Status(ctx context.Context, externalUserId string, noteId uuid.UUID) (*dto.BookmarkStatusResponse, error) {
	if noteId == uuid.Nil {
		return nil, apperr.NewValidation("note id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := resolveCaller(ctx, uow, externalUserId)
	if err != nil {
		return nil, err
	}

	existing, err := uow.BookmarkRepository().FindOne(ctx, specification.ByNoteAndUser{NoteID: noteId, UserID: user.Id})
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	return &dto.BookmarkStatusResponse{IsBookmarked: existing != nil}, nil
}
