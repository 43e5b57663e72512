package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"noteverse-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/test", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, BaseResponse[any]) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope BaseResponse[any]
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func TestErrorHandlerMiddleware_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"auth", apperr.NewAuth("authentication required"), 401, "authentication required"},
		{"validation", apperr.NewValidation("title is required"), 400, "title is required"},
		{"not found", apperr.NewNotFound("note not found"), 404, "note not found"},
		{"duplicate", apperr.NewDuplicate("already exists"), 409, "already exists"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(func(ctx *fiber.Ctx) error { return tc.err })
			status, envelope := doRequest(t, app)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantStatus, envelope.Code)
			assert.Equal(t, tc.wantMsg, envelope.Message)
		})
	}
}

func TestErrorHandlerMiddleware_StatusOverride(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return &apperr.Error{Kind: apperr.Duplicate, Message: "note already bookmarked", Status: 400}
	})

	status, envelope := doRequest(t, app)
	assert.Equal(t, 400, status)
	assert.Equal(t, "note already bookmarked", envelope.Message)
}

func TestErrorHandlerMiddleware_InternalIsMasked(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return apperr.NewInternal(assert.AnError)
	})

	status, envelope := doRequest(t, app)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, envelope.Message, assert.AnError.Error())
}

func TestErrorHandlerMiddleware_FiberErrorPassthrough(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})

	status, _ := doRequest(t, app)
	assert.Equal(t, 405, status)
}

func TestErrorHandlerMiddleware_Success(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", "payload"))
	})

	status, envelope := doRequest(t, app)
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", envelope.Message)
}
