package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/security"
)

func newAuthApp(t *testing.T) (*fiber.App, *security.Tokens) {
	t.Helper()
	tokens := security.NewTokens("test-secret", time.Hour)
	auth := NewAuth(zap.NewNop().Sugar(), tokens)

	app := fiber.New()
	app.Get("/admin", auth.RequireRole(entities.RoleAdmin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": Claims(c).Username})
	})
	app.Get("/scan", auth.RequireRole(entities.RoleAdmin, entities.RoleScanner), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app, tokens
}

func TestRequireRoleMissingToken(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.UNAUTHORIZED, body.Error.Code)
}

func TestRequireRoleBadToken(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleWrongRole(t *testing.T) {
	app, tokens := newAuthApp(t)

	token, _, err := tokens.Issue("hf26abc123", string(entities.RoleMember), "HF26ABC123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.FORBIDDEN, body.Error.Code)
}

func TestRequireRoleExposesClaims(t *testing.T) {
	app, tokens := newAuthApp(t)

	token, _, err := tokens.Issue("adminmkce", string(entities.RoleAdmin), "admin-001")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "adminmkce", body.Username)
}

func TestRequireRoleAdmitsAnyListedRole(t *testing.T) {
	app, tokens := newAuthApp(t)

	for _, role := range []entities.Role{entities.RoleAdmin, entities.RoleScanner} {
		token, _, err := tokens.Issue("gate", string(role), "u1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/scan", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
