package service

import (
	"testing"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
)

func TestNoteListFilters(t *testing.T) {
	t.Run("default hides private notes", func(t *testing.T) {
		filters := noteListFilters(&dto.ListNotesRequest{})
		assert.Equal(t, []specification.Specification{specification.PublicOnly{}}, filters)
	})

	t.Run("search narrows the listing", func(t *testing.T) {
		filters := noteListFilters(&dto.ListNotesRequest{Search: "calculus"})
		assert.Equal(t, []specification.Specification{
			specification.PublicOnly{},
			specification.SearchTitleOrDescription{Query: "calculus"},
		}, filters)
	})

	t.Run("category narrows the listing", func(t *testing.T) {
		filters := noteListFilters(&dto.ListNotesRequest{Category: "Mathematics"})
		assert.Equal(t, []specification.Specification{
			specification.PublicOnly{},
			specification.ByCategory{Category: "Mathematics"},
		}, filters)
	})

	t.Run("search and category combine", func(t *testing.T) {
		filters := noteListFilters(&dto.ListNotesRequest{Search: "limits", Category: "Mathematics"})
		assert.Len(t, filters, 3)
	})
}

func TestNoteSortSpec(t *testing.T) {
	cases := []struct {
		sort      string
		wantField string
		wantDesc  bool
	}{
		{"recent", "created_at", true},
		{"oldest", "created_at", false},
		{"popular", "upvotes", true},
		{"", "created_at", true},
		{"garbage", "created_at", true},
	}

	for _, tc := range cases {
		t.Run(tc.sort, func(t *testing.T) {
			spec, ok := noteSortSpec(tc.sort).(specification.OrderBy)
			assert.True(t, ok)
			assert.Equal(t, tc.wantField, spec.Field)
			assert.Equal(t, tc.wantDesc, spec.Desc)
		})
	}
}

func TestHasMoreNotes(t *testing.T) {
	assert.True(t, hasMoreNotes(1, 10, 11))
	assert.False(t, hasMoreNotes(1, 10, 10))
	assert.False(t, hasMoreNotes(2, 10, 20))
	assert.True(t, hasMoreNotes(2, 10, 21))
	assert.False(t, hasMoreNotes(1, 10, 0))
	// Pages past the end never report more.
	assert.False(t, hasMoreNotes(5, 10, 23))
}
