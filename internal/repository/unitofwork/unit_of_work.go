package unitofwork

import (
	"context"

	"noteverse-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	CommentRepository() contract.CommentRepository
	UpvoteRepository() contract.UpvoteRepository
	BookmarkRepository() contract.BookmarkRepository
	NotificationRepository() contract.NotificationRepository
}
