package mapper

import (
	"noteverse-be/internal/entity"
	"noteverse-be/internal/model"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:        c.Id,
		Content:   c.Content,
		NoteId:    c.NoteId,
		UserId:    c.UserId,
		ParentId:  c.ParentId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:        c.Id,
		Content:   c.Content,
		NoteId:    c.NoteId,
		UserId:    c.UserId,
		ParentId:  c.ParentId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommentMapper) ToEntities(comments []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, len(comments))
	for i, c := range comments {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
