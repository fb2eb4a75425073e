//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/localcrm/internal/app"
	"github.com/heartmarshall/localcrm/internal/client"
	"github.com/heartmarshall/localcrm/internal/config"
)

const (
	adminEmail    = "admin@localcrm.test"
	adminPassword = "admin123"
)

type testServer struct {
	URL    string
	Pool   *pgxpool.Pool
	Client *client.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SessionSecret:  "e2e-secret-that-is-long-enough-for-hs256",
			SessionIssuer:  "localcrm",
			SessionTTL:     8 * time.Hour,
			CookieName:     "crm_session",
			LoginRateLimit: 1000,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "http://localhost:5173",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type,X-Request-Id",
			AllowCredentials: true,
		},
		Seed: config.SeedConfig{
			AdminEmail:    adminEmail,
			AdminPassword: adminPassword,
			AdminName:     "Alex Admin",
		},
	}
}

// setupTestServer seeds a fresh database, mounts the full router on an
// httptest server and returns a client that is already logged in.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg := testConfig()

	require.NoError(t, app.Seed(ctx, pool, cfg.Seed, bcrypt.MinCost, logger))

	migrator, err := postgres.NewMigrator(pool)
	require.NoError(t, err)

	srv := app.NewServer(cfg, pool, migrator, logger)
	t.Cleanup(srv.Close)

	hs := httptest.NewServer(srv.Handler)
	t.Cleanup(hs.Close)

	c, err := client.New(hs.URL, nil)
	require.NoError(t, err)
	_, err = c.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	return &testServer{URL: hs.URL, Pool: pool, Client: c}
}

// rawRequest sends a request without the logged-in client's cookie jar.
func rawRequest(t *testing.T, method, url, body string) (int, map[string]any) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

// stageID returns the id of the seeded stage with the given name.
func stageID(t *testing.T, ts *testServer, name string) int64 {
	t.Helper()
	stages, err := ts.Client.ListStages(context.Background())
	require.NoError(t, err)
	for _, s := range stages {
		if s.Name == name {
			return s.ID
		}
	}
	t.Fatalf("stage %q not seeded", name)
	return 0
}

type idResponse struct {
	ID int64 `json:"id"`
}
