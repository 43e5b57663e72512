package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, Auth.Status())
	assert.Equal(t, http.StatusBadRequest, Validation.Status())
	assert.Equal(t, http.StatusNotFound, NotFound.Status())
	assert.Equal(t, http.StatusConflict, Duplicate.Status())
	assert.Equal(t, http.StatusInternalServerError, Internal.Status())
}

func TestStatusCodeOverride(t *testing.T) {
	err := &Error{Kind: Duplicate, Message: "note already bookmarked", Status: 400}
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())

	plain := NewDuplicate("email taken")
	assert.Equal(t, http.StatusConflict, plain.StatusCode())
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFound("note not found"))

	var appErr *Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, NotFound, appErr.Kind)
	assert.Equal(t, "note not found", appErr.Message)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(NewAuth("no session"), Auth))
	assert.False(t, IsKind(NewAuth("no session"), NotFound))
	assert.False(t, IsKind(errors.New("plain"), Internal))
}
