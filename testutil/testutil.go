package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"soullink-tracker/config"
	"soullink-tracker/database"
	"soullink-tracker/handlers"
	"soullink-tracker/realtime"
	"soullink-tracker/reference"
)

// TestImportPassword is the shared secret wired into every test
// environment's import endpoint.
const TestImportPassword = "test-secret"

// Env is a fully wired tracker over a throwaway data directory.
type Env struct {
	Cfg   *config.Config
	DB    *database.Manager
	Cache *reference.Cache
	Hub   *realtime.Hub
}

// NewEnv builds a migrated, seeded environment in t.TempDir with small
// but non-empty reference files.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Port:           "0",
		DataDir:        dir,
		DatabaseFile:   "test.db",
		ImportPassword: TestImportPassword,
		AllowedOrigins: []string{"*"},
	}

	writeFile(t, dir, reference.RoutesFile,
		`[{"name": "Route 101"}, {"name": "Route 102"}]`)
	writeFile(t, dir, reference.PokemonNamesFile,
		`[{"name": "Poochyena"}, {"name": "Zigzagoon"}, {"name": "Taillow"}]`)
	writeFile(t, dir, reference.LevelCapsFile,
		`[{"name": "1. Arena", "order_number": 1, "max_level": 14, "adjusted_level": 12},
		  {"name": "2. Arena", "order_number": 2, "max_level": 18, "adjusted_level": 16}]`)

	db, err := database.Open(cfg.DatabasePath())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cache := reference.NewCache(cfg.ReferencePath)
	cache.Reload()

	if err := database.Migrate(db.DB()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := database.Seed(db.DB(), cache.LevelCaps()); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	hub := realtime.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	return &Env{Cfg: cfg, DB: db, Cache: cache, Hub: hub}
}

// NewRouter returns the environment plus a gin engine with all routes
// registered.
func NewRouter(t *testing.T) (*Env, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := NewEnv(t)
	r := gin.New()
	module := handlers.NewModule(env.Cfg, env.DB, env.Cache, env.Hub)
	module.SetupRoutes(r)
	return env, r
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// DoJSON performs a request with a JSON body against the engine.
func DoJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DoRaw performs a request with an arbitrary body and content type.
func DoRaw(t *testing.T, r *gin.Engine, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
