package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gatorkut/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T, tokens *auth.TokenService) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", AuthRequired(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals("userID"),
			"username": c.Locals("username"),
		})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	tokens := auth.NewTokenService("test_secret")
	app := newProtectedApp(t, tokens)

	token, err := tokens.Issue(auth.Identity{UserID: 7, Username: "gator"})
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "missing scheme", header: token, expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, expectedStatus: http.StatusUnauthorized},
		{name: "lowercase scheme", header: "bearer " + token, expectedStatus: http.StatusUnauthorized},
		{name: "too many parts", header: "Bearer " + token + " extra", expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", expectedStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAuthRequiredRejectsTokenSignedWithOtherSecret(t *testing.T) {
	app := newProtectedApp(t, auth.NewTokenService("server_secret"))

	forged, err := auth.NewTokenService("attacker_secret").Issue(auth.Identity{UserID: 7, Username: "gator"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
