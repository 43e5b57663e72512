package service

import (
	"fmt"
	"testing"
	"time"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/entity"
	"noteverse-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var treeBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func makeComment(content string, parent *uuid.UUID, offset time.Duration) *entity.Comment {
	return &entity.Comment{
		Id:        uuid.New(),
		Content:   content,
		NoteId:    uuid.New(),
		UserId:    uuid.New(),
		ParentId:  parent,
		CreatedAt: treeBase.Add(offset),
	}
}

func TestBuildCommentForest_Empty(t *testing.T) {
	forest := BuildCommentForest(nil, nil, 0)
	assert.Empty(t, forest)
	assert.NotNil(t, forest)
}

func TestBuildCommentForest_RootOrdering(t *testing.T) {
	older := makeComment("older root", nil, 0)
	newer := makeComment("newer root", nil, time.Minute)

	forest := BuildCommentForest([]*entity.Comment{older, newer}, nil, 0)

	require.Len(t, forest, 2)
	assert.Equal(t, "newer root", forest[0].Content)
	assert.Equal(t, "older root", forest[1].Content)
}

func TestBuildCommentForest_ChildrenOldestFirst(t *testing.T) {
	root := makeComment("root", nil, 0)
	second := makeComment("second reply", &root.Id, 2*time.Minute)
	first := makeComment("first reply", &root.Id, time.Minute)

	forest := BuildCommentForest([]*entity.Comment{root, second, first}, nil, 0)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, "first reply", forest[0].Children[0].Content)
	assert.Equal(t, "second reply", forest[0].Children[1].Content)
}

func TestBuildCommentForest_DeepNesting(t *testing.T) {
	// A chain far past any fixed join depth.
	const levels = 12
	comments := make([]*entity.Comment, 0, levels)
	var parent *uuid.UUID
	for i := 0; i < levels; i++ {
		c := makeComment(fmt.Sprintf("level %d", i), parent, time.Duration(i)*time.Minute)
		comments = append(comments, c)
		parent = &c.Id
	}

	forest := BuildCommentForest(comments, nil, 0)

	require.Len(t, forest, 1)
	node := forest[0]
	for i := 1; i < levels; i++ {
		require.Len(t, node.Children, 1, "level %d should have one child", i-1)
		node = node.Children[0]
		assert.Equal(t, fmt.Sprintf("level %d", i), node.Content)
	}
	assert.Empty(t, node.Children)
}

func TestBuildCommentForest_DepthCap(t *testing.T) {
	root := makeComment("root", nil, 0)
	child := makeComment("child", &root.Id, time.Minute)
	grandchild := makeComment("grandchild", &child.Id, 2*time.Minute)

	forest := BuildCommentForest([]*entity.Comment{root, child, grandchild}, nil, 2)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "child", forest[0].Children[0].Content)
	assert.Empty(t, forest[0].Children[0].Children, "nodes below the cap are pruned")
}

func TestBuildCommentForest_AuthorsAttached(t *testing.T) {
	root := makeComment("root", nil, 0)
	authors := map[uuid.UUID]dto.UserSummary{
		root.UserId: {Id: root.UserId, Name: "Alice"},
	}

	forest := BuildCommentForest([]*entity.Comment{root}, authors, 0)

	require.Len(t, forest, 1)
	assert.Equal(t, "Alice", forest[0].User.Name)
}

func makeNode(content string) *dto.CommentNode {
	return &dto.CommentNode{
		Id:        uuid.New(),
		Content:   content,
		Children:  []*dto.CommentNode{},
		CreatedAt: treeBase,
	}
}

func TestInsertCommentNode_RootPrepended(t *testing.T) {
	existing := makeNode("existing root")
	forest := []*dto.CommentNode{existing}

	fresh := makeNode("fresh root")
	out, err := InsertCommentNode(forest, nil, fresh)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "fresh root", out[0].Content)
	assert.Equal(t, "existing root", out[1].Content)
}

func TestInsertCommentNode_ChildAppended(t *testing.T) {
	root := makeNode("root")
	sibling := makeNode("sibling")
	root.Children = []*dto.CommentNode{sibling}
	forest := []*dto.CommentNode{root}

	reply := makeNode("reply")
	out, err := InsertCommentNode(forest, &root.Id, reply)

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Children, 2)
	assert.Equal(t, "sibling", out[0].Children[0].Content)
	assert.Equal(t, "reply", out[0].Children[1].Content)
}

func TestInsertCommentNode_DeepParent(t *testing.T) {
	root := makeNode("root")
	mid := makeNode("mid")
	leaf := makeNode("leaf")
	mid.Children = []*dto.CommentNode{leaf}
	root.Children = []*dto.CommentNode{mid}
	forest := []*dto.CommentNode{root}

	reply := makeNode("deep reply")
	out, err := InsertCommentNode(forest, &leaf.Id, reply)

	require.NoError(t, err)
	got := out[0].Children[0].Children[0]
	require.Len(t, got.Children, 1)
	assert.Equal(t, "deep reply", got.Children[0].Content)
}

func TestInsertCommentNode_InputNotMutated(t *testing.T) {
	root := makeNode("root")
	forest := []*dto.CommentNode{root}

	_, err := InsertCommentNode(forest, &root.Id, makeNode("reply"))

	require.NoError(t, err)
	assert.Empty(t, root.Children, "original node must stay untouched")
}

func TestInsertCommentNode_SharesUntouchedSubtrees(t *testing.T) {
	target := makeNode("target")
	untouched := makeNode("untouched")
	forest := []*dto.CommentNode{target, untouched}

	out, err := InsertCommentNode(forest, &target.Id, makeNode("reply"))

	require.NoError(t, err)
	assert.NotSame(t, target, out[0], "path to the parent is rebuilt")
	assert.Same(t, untouched, out[1], "siblings off the path are shared")
}

func TestInsertCommentNode_OrphanParent(t *testing.T) {
	root := makeNode("root")
	forest := []*dto.CommentNode{root}

	missing := uuid.New()
	out, err := InsertCommentNode(forest, &missing, makeNode("orphan"))

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	require.Len(t, out, 1)
	assert.Equal(t, root, out[0], "forest comes back unchanged")
}
