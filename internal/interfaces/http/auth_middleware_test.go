package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/sinopos/storefront-api/internal/interfaces/http"
	pkgjwt "github.com/sinopos/storefront-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "storefront-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber application with:
//   - AuthMiddleware to parse the JWT and load locals
//   - RequireRole to authorize access
//   - A dummy handler that returns 200 once both middlewares pass
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Keep internal errors quiet in tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Protected route: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
				"user": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// tokenForRole signs a JWT with the given role.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "a valid JWT should be generated")
	return "Bearer " + tok
}

// doRequest fires a GET /protected request and returns the response.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole tests
// ──────────────────────────────────────────────────────────────────────────────

// The user holds the required role, the request passes (HTTP 200).
func TestRequireRole_AdminOnAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin should reach an admin-only route")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "response should include ok:true")
	assert.Equal(t, "admin", body["role"], "role should be admin")
	assert.Equal(t, testUserID, body["user"], "user id should come from the token")
}

// The user holds one of several allowed roles (multi-role) → HTTP 200.
func TestRequireRole_CustomerOnMixedRoute(t *testing.T) {
	app := buildTestApp("admin", "customer")
	resp := doRequest(t, app, tokenForRole(t, "customer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"customer should reach a route allowing admin or customer")
}

// A different role than required → HTTP 403 Forbidden.
func TestRequireRole_CustomerBlockedOnAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "customer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"customer must not reach an admin-only route")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"the error response should carry the FORBIDDEN code")
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware tests
// ──────────────────────────────────────────────────────────────────────────────

// No Authorization header → HTTP 401.
func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Malformed header (no Bearer prefix) → HTTP 401.
func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Garbage token → HTTP 401.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer not-a-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token signed with another secret → HTTP 401.
func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate("a-different-secret", testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// A confirmation token must not open protected routes.
func TestAuthMiddleware_ConfirmTokenRejected(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.GenerateConfirm(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"an email-confirmation token is not a session token")
}
