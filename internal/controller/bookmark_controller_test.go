package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"noteverse-be/internal/dto"
	"noteverse-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietLogger struct{}

func (quietLogger) Debug(module, message string, details map[string]interface{}) {}
func (quietLogger) Info(module, message string, details map[string]interface{})  {}
func (quietLogger) Warn(module, message string, details map[string]interface{})  {}
func (quietLogger) Error(module, message string, details map[string]interface{}) {}
func (quietLogger) Sync() error { return nil }

type stubBookmarkService struct {
	listCalls   int
	statusCalls int
	statusNote  uuid.UUID
	bookmarked  bool
}

func (s *stubBookmarkService) Add(ctx context.Context, externalUserId string, req *dto.AddBookmarkRequest) (*dto.BookmarkResponse, error) {
	return &dto.BookmarkResponse{Id: uuid.New()}, nil
}

func (s *stubBookmarkService) Remove(ctx context.Context, externalUserId string, noteId uuid.UUID) error {
	return nil
}

func (s *stubBookmarkService) List(ctx context.Context, externalUserId string) ([]*dto.BookmarkResponse, error) {
	s.listCalls++
	return []*dto.BookmarkResponse{}, nil
}

func (s *stubBookmarkService) Status(ctx context.Context, externalUserId string, noteId uuid.UUID) (*dto.BookmarkStatusResponse, error) {
	s.statusCalls++
	s.statusNote = noteId
	return &dto.BookmarkStatusResponse{IsBookmarked: s.bookmarked}, nil
}

func newBookmarkApp(svc *stubBookmarkService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(quietLogger{}))
	NewBookmarkController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-jwt-secret"))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestBookmarkList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	svc := &stubBookmarkService{}
	app := newBookmarkApp(svc)

	req := httptest.NewRequest("GET", "/api/bookmark", nil)
	req.Header.Set("Authorization", bearerToken(t, "user_ext_1"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 1, svc.listCalls)
	assert.Equal(t, 0, svc.statusCalls)
}

func TestBookmarkListWithNoteIdAnswersStatus(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	svc := &stubBookmarkService{bookmarked: true}
	app := newBookmarkApp(svc)

	noteId := uuid.New()
	req := httptest.NewRequest("GET", "/api/bookmark?noteId="+noteId.String(), nil)
	req.Header.Set("Authorization", bearerToken(t, "user_ext_1"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 0, svc.listCalls)
	assert.Equal(t, 1, svc.statusCalls)
	assert.Equal(t, noteId, svc.statusNote)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Data dto.BookmarkStatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Data.IsBookmarked)
}

func TestBookmarkListRejectsMalformedNoteId(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	svc := &stubBookmarkService{}
	app := newBookmarkApp(svc)

	req := httptest.NewRequest("GET", "/api/bookmark?noteId=not-a-uuid", nil)
	req.Header.Set("Authorization", bearerToken(t, "user_ext_1"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, 0, svc.listCalls)
	assert.Equal(t, 0, svc.statusCalls)
}
