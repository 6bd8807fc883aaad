package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"gorm.io/gorm"

	"jobtracker_backend/internal/app"
	"jobtracker_backend/internal/config"
	"jobtracker_backend/internal/database"
	"jobtracker_backend/internal/logger"
)

// TestServer is the full HTTP stack on top of a real database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Driver string

	cancel context.CancelFunc
}

// NewTestServer connects to TEST_DATABASE_URL (driver from TEST_DATABASE_DRIVER, default
// postgres), migrates the schema and starts the router. It skips the test when no database
// is configured.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set; skipping integration test")
	}

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.DSN = dsn
	if driver := os.Getenv("TEST_DATABASE_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}
	cfg.RateLimit.Enabled = false
	cfg.Swagger.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	log := logger.Discard()
	db, err := database.Open(cfg, log)
	if err != nil {
		t.Fatalf("could not connect to the test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("could not migrate the test database: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	router := app.SetupRouter(ctx, cfg, db, log)

	return &TestServer{
		Server: httptest.NewServer(router),
		DB:     db,
		Driver: cfg.Database.Driver,
		cancel: cancel,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.cancel()
	_ = database.Close(ts.DB)
}

// ClearTables empties both tables and resets their id sequences.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()

	var statements []string
	switch ts.Driver {
	case "mysql":
		statements = []string{
			"SET FOREIGN_KEY_CHECKS = 0",
			"TRUNCATE TABLE applications",
			"TRUNCATE TABLE users",
			"SET FOREIGN_KEY_CHECKS = 1",
		}
	default:
		statements = []string{"TRUNCATE TABLE applications, users RESTART IDENTITY CASCADE"}
	}

	for _, stmt := range statements {
		if err := ts.DB.Exec(stmt).Error; err != nil {
			t.Fatalf("could not clear tables (%s): %v", stmt, err)
		}
	}
}

// SendRequest sends body as JSON and returns the response with its body read.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("could not build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("could not read response body: %v", err)
	}
	return res, string(resBody)
}

// DecodeJSON unmarshals body into v or fails the test.
func DecodeJSON(t *testing.T, body string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), v); err != nil {
		t.Fatalf("could not decode %q: %v", body, err)
	}
}
