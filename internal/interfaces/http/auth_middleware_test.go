package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/revenue-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/revenue-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "operador"
	testIssuer    = "revenue-api-test"
	testExpMin    = 60
)

// signToken JWT firmado con el secreto de test; ttl negativo produce un token vencido.
func signToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	tok, err := pkgjwt.Generate(
		pkgjwt.Options{Secret: testJWTSecret, Issuer: testIssuer, TTL: ttl},
		pkgjwt.Identity{UserID: testUserID, Username: testUsername, Role: role},
	)
	require.NoError(t, err)
	return "Bearer " + tok
}

// gatedApp GET /protected detrás de AuthMiddleware + RequireRole(roles...).
func gatedApp(roles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(roles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": apphttp.GetRole(c)})
		},
	)
	return app
}

func TestRequireRole_Casos(t *testing.T) {
	valid := time.Duration(testExpMin) * time.Minute
	cases := []struct {
		name     string
		allowed  []string
		header   string
		wantCode int
		wantBody string
	}{
		{"admin en ruta admin", []string{"admin"}, signToken(t, "admin", valid), http.StatusOK, `"role":"admin"`},
		{"user en ruta admin o user", []string{"admin", "user"}, signToken(t, "user", valid), http.StatusOK, `"role":"user"`},
		{"user en ruta admin", []string{"admin"}, signToken(t, "user", valid), http.StatusForbidden, "FORBIDDEN"},
		{"rol desconocido", []string{"admin", "user"}, signToken(t, "auditor", valid), http.StatusForbidden, "FORBIDDEN"},
		{"token sin rol", []string{"admin"}, signToken(t, "", valid), http.StatusUnauthorized, "MISSING_ROLE"},
		{"sin header", []string{"admin"}, "", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"esquema distinto de Bearer", []string{"admin"}, "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"token malformado", []string{"admin"}, "Bearer token.invalido.aqui", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"token vencido", []string{"admin"}, signToken(t, "admin", -time.Minute), http.StatusUnauthorized, "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := gatedApp(tc.allowed...).Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantCode, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestAuthMiddleware_CargaIdentidadEnLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", signToken(t, "admin", time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_SecretDistinto_401(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware("otro-secret-completamente-distinto"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", signToken(t, "admin", time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
