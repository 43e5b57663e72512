package service

import (
	"sort"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/entity"
	"noteverse-be/internal/pkg/apperr"

	"github.com/google/uuid"
)

// BuildCommentForest materializes the flat parent-pointer rows of one note
// into a reply forest. It is a genuine recursive grouping pass, so nesting is
// not capped by a fixed number of joins: maxDepth = 0 keeps every level, a
// positive maxDepth prunes children below that level.
//
// Roots come out newest-first, children oldest-first.
func BuildCommentForest(comments []*entity.Comment, authors map[uuid.UUID]dto.UserSummary, maxDepth int) []*dto.CommentNode {
	byParent := make(map[uuid.UUID][]*entity.Comment)
	var roots []*entity.Comment
	for _, c := range comments {
		if c.ParentId == nil {
			roots = append(roots, c)
			continue
		}
		byParent[*c.ParentId] = append(byParent[*c.ParentId], c)
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})

	forest := make([]*dto.CommentNode, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, buildNode(root, byParent, authors, maxDepth, 1))
	}
	return forest
}

func buildNode(c *entity.Comment, byParent map[uuid.UUID][]*entity.Comment, authors map[uuid.UUID]dto.UserSummary, maxDepth, depth int) *dto.CommentNode {
	node := &dto.CommentNode{
		Id:        c.Id,
		Content:   c.Content,
		ParentId:  c.ParentId,
		User:      authors[c.UserId],
		Children:  []*dto.CommentNode{},
		CreatedAt: c.CreatedAt,
	}

	if maxDepth > 0 && depth >= maxDepth {
		return node
	}

	children := byParent[c.Id]
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].CreatedAt.Before(children[j].CreatedAt)
	})
	for _, child := range children {
		node.Children = append(node.Children, buildNode(child, byParent, authors, maxDepth, depth+1))
	}
	return node
}

// InsertCommentNode adds a fresh node to an already-materialized forest
// without refetching it. A nil parentId prepends the node as the newest root;
// otherwise the parent is located depth-first and the node is appended to its
// children.
//
// The input forest is never mutated: only the path down to the parent is
// rebuilt, every untouched subtree is shared with the result. When the parent
// is not present the forest comes back unchanged alongside a NotFoundError,
// instead of the node silently vanishing.
func InsertCommentNode(forest []*dto.CommentNode, parentId *uuid.UUID, node *dto.CommentNode) ([]*dto.CommentNode, error) {
	if parentId == nil {
		out := make([]*dto.CommentNode, 0, len(forest)+1)
		out = append(out, node)
		out = append(out, forest...)
		return out, nil
	}

	out, inserted := insertInto(forest, *parentId, node)
	if !inserted {
		return forest, apperr.NewNotFound("parent comment not found in tree")
	}
	return out, nil
}

func insertInto(nodes []*dto.CommentNode, parentId uuid.UUID, node *dto.CommentNode) ([]*dto.CommentNode, bool) {
	for i, n := range nodes {
		if n.Id == parentId {
			replaced := *n
			replaced.Children = append(append([]*dto.CommentNode{}, n.Children...), node)

			out := make([]*dto.CommentNode, len(nodes))
			copy(out, nodes)
			out[i] = &replaced
			return out, true
		}

		if children, ok := insertInto(n.Children, parentId, node); ok {
			replaced := *n
			replaced.Children = children

			out := make([]*dto.CommentNode, len(nodes))
			copy(out, nodes)
			out[i] = &replaced
			return out, true
		}
	}
	return nodes, false
}
