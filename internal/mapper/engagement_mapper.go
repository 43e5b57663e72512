package mapper

import (
	"noteverse-be/internal/entity"
	"noteverse-be/internal/model"
)

// Upvote and Bookmark are plain join rows, so their mappers are field copies.

type UpvoteMapper struct{}

func NewUpvoteMapper() *UpvoteMapper {
	return &UpvoteMapper{}
}

func (m *UpvoteMapper) ToEntity(u *model.Upvote) *entity.Upvote {
	if u == nil {
		return nil
	}
	return &entity.Upvote{
		Id:        u.Id,
		NoteId:    u.NoteId,
		UserId:    u.UserId,
		CreatedAt: u.CreatedAt,
	}
}

func (m *UpvoteMapper) ToModel(u *entity.Upvote) *model.Upvote {
	if u == nil {
		return nil
	}
	return &model.Upvote{
		Id:        u.Id,
		NoteId:    u.NoteId,
		UserId:    u.UserId,
		CreatedAt: u.CreatedAt,
	}
}

type BookmarkMapper struct{}

func NewBookmarkMapper() *BookmarkMapper {
	return &BookmarkMapper{}
}

func (m *BookmarkMapper) ToEntity(b *model.Bookmark) *entity.Bookmark {
	if b == nil {
		return nil
	}
	return &entity.Bookmark{
		Id:        b.Id,
		NoteId:    b.NoteId,
		UserId:    b.UserId,
		CreatedAt: b.CreatedAt,
	}
}

func (m *BookmarkMapper) ToModel(b *entity.Bookmark) *model.Bookmark {
	if b == nil {
		return nil
	}
	return &model.Bookmark{
		Id:        b.Id,
		NoteId:    b.NoteId,
		UserId:    b.UserId,
		CreatedAt: b.CreatedAt,
	}
}

func (m *BookmarkMapper) ToEntities(bookmarks []*model.Bookmark) []*entity.Bookmark {
	entities := make([]*entity.Bookmark, len(bookmarks))
	for i, b := range bookmarks {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
