package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/astrolaunch/launchpad/internal/auth"
	"github.com/astrolaunch/launchpad/internal/cache"
	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/db"
	httpx "github.com/astrolaunch/launchpad/internal/http"
	"github.com/astrolaunch/launchpad/internal/observability"
	"github.com/astrolaunch/launchpad/internal/repo"
	"github.com/astrolaunch/launchpad/internal/repo/memory"
	"github.com/astrolaunch/launchpad/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	return config.Config{
		Env:            "test",
		JWTSecret:      "test-secret-key",
		TokenTTLHours:  24,
		AdminEmail:     "admin@astrolaunch.com",
		AdminPassword:  "orbital-pass-1",
		AdminName:      "Test Admin",
		AuthRateLimit:  100,
		AuthRateWindow: time.Minute,
	}
}

// full pipeline against the memory backend, seeded like a fresh deployment
func setupTestRouter(t *testing.T) (*gin.Engine, repo.Stores) {
	t.Helper()

	cfg := testConfig()

	stores := repo.Stores{
		Users:     memory.NewUsersRepo(),
		Rockets:   memory.NewRocketsRepo(),
		Missions:  memory.NewMissionsRepo(),
		Teams:     memory.NewTeamsRepo(),
		Schedules: memory.NewSchedulesRepo(),
	}

	ctx := context.Background()

	if err := db.EnsureAdminUser(ctx, stores.Users, cfg); err != nil {
		t.Fatalf("admin bootstrap failed: %v", err)
	}

	if err := seed.Content(ctx, stores); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := httpx.NewRouter(httpx.Deps{
		Log:       logger,
		Cfg:       cfg,
		JWT:       auth.NewManager(cfg.JWTSecret, cfg.TokenTTL()),
		Stores:    stores,
		Prom:      observability.NewProm(prometheus.NewRegistry()),
		ListCache: cache.NewMemory(5 * time.Second),
	})

	return router, stores
}

func doRequest(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))

	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func mustReadJSON[T any](t *testing.T, w *httptest.ResponseRecorder, out *T) {
	t.Helper()
	err := json.Unmarshal(w.Body.Bytes(), out)
	if err != nil {
		t.Fatalf("failed to unmarshal json: %v, body=%s", err, w.Body.String())
	}
}

func registerAndGetToken(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/api/auth/register",
		`{"email":"`+email+`","password":"pw123456","name":"Visitor"}`, "")

	if w.Code != http.StatusOK {
		t.Fatalf("register failed: %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	mustReadJSON(t, w, &resp)

	return resp.Token
}

func loginAndGetToken(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/api/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`, "")

	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	mustReadJSON(t, w, &resp)

	return resp.Token
}

func TestRootEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/", "", "")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	mustReadJSON(t, w, &resp)

	if resp.Message != "AstroLaunch API" {
		t.Errorf("got message %q", resp.Message)
	}
}

func TestSeededContent(t *testing.T) {
	router, _ := setupTestRouter(t)

	wantCounts := map[string]int{
		"/api/rockets":   3,
		"/api/missions":  3,
		"/api/teams":     4,
		"/api/schedules": 3,
	}

	for path, want := range wantCounts {
		w := doRequest(router, http.MethodGet, path, "", "")

		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: got status %d", path, w.Code)
		}

		var items []map[string]interface{}
		mustReadJSON(t, w, &items)

		if len(items) != want {
			t.Errorf("GET %s: got %d items, want %d", path, len(items), want)
		}

		// the storage-internal key never leaves the store
		for _, item := range items {
			if _, ok := item["_id"]; ok {
				t.Errorf("GET %s: response leaks a storage-internal id", path)
			}
			if id, _ := item["id"].(string); id == "" {
				t.Errorf("GET %s: record without a public id: %v", path, item)
			}
		}
	}
}

func TestSchedulesSortedByLaunchDate(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/schedules", "", "")

	var items []struct {
		MissionName string    `json:"missionName"`
		LaunchDate  time.Time `json:"launchDate"`
	}
	mustReadJSON(t, w, &items)

	if len(items) < 2 {
		t.Fatalf("expected seeded schedules, got %d", len(items))
	}

	for i := 1; i < len(items); i++ {
		if items[i].LaunchDate.Before(items[i-1].LaunchDate) {
			t.Errorf("schedules out of order at %d: %v after %v", i, items[i].LaunchDate, items[i-1].LaunchDate)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	router, stores := setupTestRouter(t)

	// bootstrap runs once at startup; running it again must change nothing
	for i := 0; i < 3; i++ {
		if err := seed.Content(context.Background(), stores); err != nil {
			t.Fatalf("re-seed failed: %v", err)
		}
	}

	w := doRequest(router, http.MethodGet, "/api/rockets", "", "")

	var items []map[string]interface{}
	mustReadJSON(t, w, &items)

	if len(items) != 3 {
		t.Errorf("got %d rockets after repeated seeding, want 3", len(items))
	}
}

func TestContentCreateAuthorization(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := `{"name":"Neutron","type":"Medium-lift launch vehicle","status":"development"}`

	t.Run("no_token", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/rockets", body, "")

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want 401, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("garbage_token", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/rockets", body, "not-a-real-token")

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want 401", w.Code)
		}
	})

	t.Run("non_admin_token", func(t *testing.T) {
		token := registerAndGetToken(t, router, "visitor@x.com")

		w := doRequest(router, http.MethodPost, "/api/rockets", body, token)

		if w.Code != http.StatusForbidden {
			t.Fatalf("got status %d, want 403, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("admin_token", func(t *testing.T) {
		token := loginAndGetToken(t, router, "admin@astrolaunch.com", "orbital-pass-1")

		w := doRequest(router, http.MethodPost, "/api/rockets", body, token)

		if w.Code != http.StatusCreated {
			t.Fatalf("got status %d, want 201, body=%s", w.Code, w.Body.String())
		}

		var created struct {
			ID        string    `json:"id"`
			Name      string    `json:"name"`
			CreatedAt time.Time `json:"createdAt"`
		}
		mustReadJSON(t, w, &created)

		if created.ID == "" || created.CreatedAt.IsZero() {
			t.Fatalf("server-side id/createdAt missing: %+v", created)
		}

		// round trip: the new record shows up in the list, newest first
		list := doRequest(router, http.MethodGet, "/api/rockets", "", "")

		var items []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		mustReadJSON(t, list, &items)

		if len(items) != 4 {
			t.Fatalf("got %d rockets, want 4", len(items))
		}

		if items[0].ID != created.ID || items[0].Name != "Neutron" {
			t.Errorf("created rocket not first in list: %+v", items[0])
		}
	})
}

func TestDuplicateRegistration(t *testing.T) {
	router, _ := setupTestRouter(t)

	payload := `{"email":"a@x.com","password":"pw123456","name":"A"}`

	first := doRequest(router, http.MethodPost, "/api/auth/register", payload, "")

	if first.Code != http.StatusOK {
		t.Fatalf("first registration: got %d, body=%s", first.Code, first.Body.String())
	}

	second := doRequest(router, http.MethodPost, "/api/auth/register", payload, "")

	if second.Code != http.StatusBadRequest {
		t.Fatalf("second registration: got %d, want 400", second.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	mustReadJSON(t, second, &resp)

	if resp.Error != "User already exists" {
		t.Errorf("got error %q", resp.Error)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	router, _ := setupTestRouter(t)

	token := registerAndGetToken(t, router, "verify-me@x.com")

	w := doRequest(router, http.MethodGet, "/api/auth/verify", "", token)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Valid bool `json:"valid"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	mustReadJSON(t, w, &resp)

	if !resp.Valid || resp.User.Email != "verify-me@x.com" {
		t.Errorf("verify did not resolve the registered identity: %+v", resp)
	}
}

func TestCORSHeaders(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("on_regular_response", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/rockets", "", "")

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}

		if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Authorization,Content-Type" {
			t.Errorf("Access-Control-Allow-Headers = %q", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/rockets", nil)
		req.Header.Set("Origin", "https://astrolaunch.example")
		req.Header.Set("Access-Control-Request-Method", "POST")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("got status %d, want 204", w.Code)
		}

		if w.Body.Len() != 0 {
			t.Errorf("preflight response must have no body, got %q", w.Body.String())
		}

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
	})
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/launch-codes", "", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	mustReadJSON(t, w, &resp)

	if resp.Error != "Route /api/launch-codes not found" {
		t.Errorf("got error %q", resp.Error)
	}
}

func TestMutationsRequireJSONContentType(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("email=a@x.com"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("got status %d, want 415", w.Code)
	}
}
