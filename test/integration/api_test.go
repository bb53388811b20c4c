// Package integration runs the full API against PostgreSQL and MySQL.
// Tests skip when the corresponding test database is not reachable.
package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atluixx/lynkt/internal/app"
	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	"github.com/atluixx/lynkt/internal/config"
	"github.com/atluixx/lynkt/internal/testutil"
)

const frontendSecret = "integration-frontend-secret"

// integrationTestContext holds all dependencies and state for one driver run.
type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
	token     string
}

// makeRequest performs an HTTP request through the gate and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body any,
	withSession bool,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	req.Header.Set(authDomain.FrontendSecretHeader, frontendSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withSession {
		req.AddCookie(&http.Cookie{Name: authDomain.TokenCookieName, Value: ctx.token})
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// setupIntegrationTest migrates the database and serves the container's router.
func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var db *sql.DB
	var dsn string
	if dbDriver == "postgres" {
		testutil.SkipIfNoPostgres(t)
		db = testutil.SetupPostgresDB(t)
		dsn = testutil.GetPostgresTestDSN()
	} else {
		testutil.SkipIfNoMySQL(t)
		db = testutil.SetupMySQLDB(t)
		dsn = testutil.GetMySQLTestDSN()
	}

	cfg := &config.Config{
		DBDriver:             dbDriver,
		DBConnectionString:   dsn,
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		JWTSecret:            "integration-jwt-secret",
		TokenExpiration:      time.Hour,
		TokenClockSkew:       30 * time.Second,
		FrontendSecret:       frontendSecret,
		CookieSameSite:       "lax",
	}
	require.NoError(t, cfg.Validate())

	container := app.NewContainer(cfg)

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	return &integrationTestContext{
		container: container,
		db:        db,
		server:    httptest.NewServer(httpSrv.GetHandler()),
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}
	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}
	if ctx.db != nil {
		testutil.TeardownDB(t, ctx.db)
	}
}

func decodeJSON(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestIntegration_ProfileLifecycle(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, driver)
			defer teardownIntegrationTest(t, ctx)

			t.Run("01_Register", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/auth/register/", map[string]any{
					"name":     "Alice Smith",
					"slug":     "alice",
					"email":    "alice@x.com",
					"password": "Str0ng!Pass",
					"country":  "US",
				}, false)
				require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

				user := decodeJSON(t, body)["user"].(map[string]any)
				assert.Equal(t, "alice", user["slug"])
				assert.NotContains(t, user, "password_hash")
			})

			t.Run("02_DuplicateRegistration", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodPost, "/auth/register/", map[string]any{
					"name":     "Alice Again",
					"slug":     "alice2",
					"email":    "alice@x.com",
					"password": "Str0ng!Pass",
				}, false)
				assert.Equal(t, http.StatusConflict, resp.StatusCode)
			})

			t.Run("03_Login", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/auth/login/", map[string]string{
					"email":    "alice@x.com",
					"password": "Str0ng!Pass",
				}, false)
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				for _, c := range resp.Cookies() {
					if c.Name == authDomain.TokenCookieName {
						ctx.token = c.Value
					}
				}
				require.NotEmpty(t, ctx.token, "login did not set the session cookie")
			})

			t.Run("04_Me", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/auth/me/", nil, true)
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
				assert.Equal(t, "alice@x.com", decodeJSON(t, body)["user"].(map[string]any)["email"])
			})

			var linkID string
			t.Run("05_CreateLinkAndClick", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/users/alice/links/", map[string]any{
					"url":        "https://github.com/alice",
					"label":      "GitHub",
					"is_active":  true,
					"max_clicks": 2,
				}, true)
				require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
				linkID = decodeJSON(t, body)["link"].(map[string]any)["id"].(string)

				clickPath := "/users/alice/links/" + linkID + "/click/"
				for range 2 {
					resp, body = ctx.makeRequest(t, http.MethodPost, clickPath, nil, false)
					require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
					assert.Equal(t, "https://github.com/alice", decodeJSON(t, body)["url"])
				}

				resp, _ = ctx.makeRequest(t, http.MethodPost, clickPath, nil, false)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)

				resp, body = ctx.makeRequest(t, http.MethodGet, "/users/alice/links/", nil, false)
				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Empty(t, decodeJSON(t, body)["links"])
			})

			t.Run("06_DeleteProfileCascades", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodDelete, "/users/alice/", nil, true)
				require.Equal(t, http.StatusNoContent, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodGet, "/users/alice/links/"+linkID+"/", nil, false)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})
		})
	}
}
