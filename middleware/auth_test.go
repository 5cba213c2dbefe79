package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guitar_square_backend/middleware"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "mw-secret")
	app := fiber.New()
	app.Get("/protected", middleware.RequireAuth, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		return c.JSON(fiber.Map{"email": email})
	})
	return app
}

func sign(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"email": "a@x.com", "exp": exp.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func get(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	return resp
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := newAuthApp(t)
	resp := get(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app := newAuthApp(t)
	resp := get(t, app, "Token abcdef")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthWrongSecret(t *testing.T) {
	app := newAuthApp(t)
	resp := get(t, app, "Bearer "+sign(t, "wrong-secret", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	app := newAuthApp(t)
	resp := get(t, app, "Bearer "+sign(t, "mw-secret", time.Now().Add(-time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthValidTokenAttachesIdentity(t *testing.T) {
	app := newAuthApp(t)
	resp := get(t, app, "Bearer "+sign(t, "mw-secret", time.Now().Add(time.Hour)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
