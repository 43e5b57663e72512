package service

import (
	"context"
	"testing"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/entity"
	"noteverse-be/internal/repository/contract"
	"noteverse-be/internal/repository/specification"
	"noteverse-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLogger struct{}

func (stubLogger) Debug(module, message string, details map[string]interface{}) {}
func (stubLogger) Info(module, message string, details map[string]interface{})  {}
func (stubLogger) Warn(module, message string, details map[string]interface{})  {}
func (stubLogger) Error(module, message string, details map[string]interface{}) {}
func (stubLogger) Sync() error { return nil }

type stubUserRepo struct {
	contract.UserRepository
	user *entity.User
}

func (r *stubUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return r.user, nil
}

type stubNoteRepo struct {
	contract.NoteRepository
	note    *entity.Note
	adjusts []int
}

func (r *stubNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	return r.note, nil
}

func (r *stubNoteRepo) AdjustUpvotes(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	r.adjusts = append(r.adjusts, delta)
	r.note.Upvotes += delta
	return r.note.Upvotes, nil
}

type stubUpvoteRepo struct {
	contract.UpvoteRepository
	existing       *entity.Upvote
	deleteAffected int64
	created        []*entity.Upvote
}

func (r *stubUpvoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Upvote, error) {
	return r.existing, nil
}

func (r *stubUpvoteRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.deleteAffected, nil
}

func (r *stubUpvoteRepo) Create(ctx context.Context, upvote *entity.Upvote) error {
	r.created = append(r.created, upvote)
	return nil
}

type stubUow struct {
	unitofwork.UnitOfWork
	users   *stubUserRepo
	notes   *stubNoteRepo
	upvotes *stubUpvoteRepo
}

func (u *stubUow) Begin(ctx context.Context) error             { return nil }
func (u *stubUow) Commit() error                               { return nil }
func (u *stubUow) Rollback() error                             { return nil }
func (u *stubUow) UserRepository() contract.UserRepository     { return u.users }
func (u *stubUow) NoteRepository() contract.NoteRepository     { return u.notes }
func (u *stubUow) UpvoteRepository() contract.UpvoteRepository { return u.upvotes }

type stubUowFactory struct {
	uow *stubUow
}

func (f *stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newToggleFixture(existing *entity.Upvote, deleteAffected int64, upvotes int) (IUpvoteService, *stubNoteRepo, *stubUpvoteRepo) {
	user := &entity.User{Id: uuid.New(), ExternalId: "ext-1"}
	note := &entity.Note{Id: uuid.New(), Title: "Limits", Upvotes: upvotes, UserId: uuid.New()}
	if existing != nil {
		existing.NoteId = note.Id
		existing.UserId = user.Id
	}

	notes := &stubNoteRepo{note: note}
	upvoteRepo := &stubUpvoteRepo{existing: existing, deleteAffected: deleteAffected}
	uow := &stubUow{
		users:   &stubUserRepo{user: user},
		notes:   notes,
		upvotes: upvoteRepo,
	}
	svc := NewUpvoteService(&stubUowFactory{uow: uow}, nil, nil, stubLogger{})
	return svc, notes, upvoteRepo
}

func TestToggleAddsUpvote(t *testing.T) {
	svc, notes, upvoteRepo := newToggleFixture(nil, 0, 3)

	res, err := svc.Toggle(context.Background(), "ext-1", &dto.ToggleUpvoteRequest{NoteId: notes.note.Id})
	require.NoError(t, err)

	assert.True(t, res.IsUpvoted)
	assert.Equal(t, 4, res.Upvotes)
	assert.Equal(t, []int{1}, notes.adjusts)
	assert.Len(t, upvoteRepo.created, 1)
}

func TestToggleRemovesUpvote(t *testing.T) {
	existing := &entity.Upvote{Id: uuid.New()}
	svc, notes, _ := newToggleFixture(existing, 1, 3)

	res, err := svc.Toggle(context.Background(), "ext-1", &dto.ToggleUpvoteRequest{NoteId: notes.note.Id})
	require.NoError(t, err)

	assert.False(t, res.IsUpvoted)
	assert.Equal(t, 2, res.Upvotes)
	assert.Equal(t, []int{-1}, notes.adjusts)
}

func TestToggleRemoveSkipsCounterWhenRowAlreadyGone(t *testing.T) {
	// Two removals race: the other transaction deletes the row and decrements
	// the counter first, so our delete touches zero rows. The counter must be
	// left alone or a note with one upvote would end up at -1.
	existing := &entity.Upvote{Id: uuid.New()}
	svc, notes, _ := newToggleFixture(existing, 0, 0)

	res, err := svc.Toggle(context.Background(), "ext-1", &dto.ToggleUpvoteRequest{NoteId: notes.note.Id})
	require.NoError(t, err)

	assert.False(t, res.IsUpvoted)
	assert.Equal(t, 0, res.Upvotes)
	assert.Empty(t, notes.adjusts)
}
