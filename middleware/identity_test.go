package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kabulearn/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	InitSessionStore()

	app := fiber.New()
	app.Get("/whoami", OptionalJWTMiddleware, func(c *fiber.Ctx) error {
		identity := ResolveIdentity(c)
		return c.JSON(fiber.Map{
			"user_id":    identity.UserID,
			"session_id": identity.SessionID,
		})
	})
	return app
}

func TestResolveIdentity_GuestGetsStableSessionID(t *testing.T) {
	app := identityTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	first := decodeIdentity(t, resp)
	assert.NotEmpty(t, first.SessionID)
	assert.Zero(t, first.UserID)

	// Replay the session cookie: the same guest id must come back
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, cookie := range resp.Cookies() {
		req.AddCookie(cookie)
	}
	resp, err = app.Test(req)
	require.NoError(t, err)

	second := decodeIdentity(t, resp)
	assert.Equal(t, first.SessionID, second.SessionID)
}

func TestResolveIdentity_FreshRequestGetsFreshGuestID(t *testing.T) {
	app := identityTestApp(t)

	resp1, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	resp2, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)

	assert.NotEqual(t, decodeIdentity(t, resp1).SessionID, decodeIdentity(t, resp2).SessionID)
}

func TestResolveIdentity_AuthenticatedUserWins(t *testing.T) {
	app := identityTestApp(t)

	token, err := GenerateJWT(42, "Test User", "USER", "test@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	identity := decodeIdentity(t, resp)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Empty(t, identity.SessionID)
}

func TestResolveIdentity_BrokenTokenDegradesToGuest(t *testing.T) {
	app := identityTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	identity := decodeIdentity(t, resp)
	assert.Zero(t, identity.UserID)
	assert.NotEmpty(t, identity.SessionID)
}

type identityPayload struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"session_id"`
}

func decodeIdentity(t *testing.T, resp *http.Response) identityPayload {
	t.Helper()
	defer resp.Body.Close()

	var payload identityPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}
