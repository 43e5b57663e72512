package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "test-jwt-secret"

func signToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(testJwtSecret))
	require.NoError(t, err)
	return signed
}

func newJwtApp(middleware fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/me", middleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString(CallerExternalId(ctx))
	})
	return app
}

func TestJwtMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newJwtApp(JwtMiddleware)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user_ext_1", time.Now().Add(time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestJwtMiddleware_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newJwtApp(JwtMiddleware)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJwtMiddleware_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newJwtApp(JwtMiddleware)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user_ext_1", time.Now().Add(-time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJwtMiddleware_MalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newJwtApp(JwtMiddleware)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJwtMiddleware_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-different-secret")
	app := newJwtApp(JwtMiddleware)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user_ext_1", time.Now().Add(time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestOptionalJwtMiddleware_Anonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newJwtApp(OptionalJwtMiddleware)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestOptionalJwtMiddleware_InvalidTokenStillPasses(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newJwtApp(OptionalJwtMiddleware)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
