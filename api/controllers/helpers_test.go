package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/EltonDagodog/VoteRoyale/voting"
	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	logging.BootstrapLogger()
	gin.SetMode(gin.TestMode)
	m.Run()
}

// fakeBackend stands in for the pageant REST API. Handlers are keyed by
// "METHOD /path"; unregistered routes answer 404 like the real backend.
type fakeBackend struct {
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	server   *httptest.Server
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{handlers: make(map[string]http.HandlerFunc)}
	b.server = httptest.NewServer(b)
	return b
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	handler, ok := b.handlers[r.Method+" "+r.URL.Path]
	b.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
		return
	}
	handler(w, r)
}

func (b *fakeBackend) handle(method, path string, handler http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[method+" "+path] = handler
}

// respond registers a fixed JSON response for a route.
func (b *fakeBackend) respond(method, path string, status int, payload any) {
	b.handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if payload != nil {
			_ = json.NewEncoder(w).Encode(payload)
		}
	})
}

func (b *fakeBackend) Close() { b.server.Close() }

// testEnv wires the full router against a fake backend with in-memory
// session storage. now feeds the voting controller's clock.
type testEnv struct {
	router   *gin.Engine
	backend  *fakeBackend
	sessions *storage.MemorySessionStorage
	registry *voting.Registry
	now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		backend:  newFakeBackend(),
		sessions: storage.NewMemorySessionStorage(),
		registry: voting.NewRegistry(),
		now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	t.Cleanup(env.backend.Close)

	client := upstream.NewClient(env.backend.server.URL, 5*time.Second)
	env.router = transport.NewRouter(gin.TestMode)

	NewAuthController(client, env.sessions).RegisterRoutes(env.router)
	NewEventsController(client, env.sessions).RegisterRoutes(env.router)
	NewParticipantsController(client, env.sessions).RegisterRoutes(env.router)
	NewJudgesController(client, env.sessions).RegisterRoutes(env.router)
	NewCategoriesController(client, env.sessions).RegisterRoutes(env.router)
	NewResultsController(client, env.sessions).RegisterRoutes(env.router)

	votingController := NewVotingController(client, env.sessions, env.registry)
	votingController.now = func() time.Time { return env.now }
	votingController.RegisterRoutes(env.router)

	return env
}

func (env *testEnv) seedCoordinator(t *testing.T) string {
	t.Helper()
	session := &storage.ConsoleSession{
		Token:       "COORDTOKEN",
		Role:        storage.RoleCoordinator,
		AccessToken: "coordinator-bearer",
		UserID:      "100",
		Name:        "Coordinator Reyes",
		Email:       "reyes@example.com",
	}
	if err := env.sessions.Put(context.Background(), session); err != nil {
		t.Fatalf("seed coordinator session: %v", err)
	}
	return session.Token
}

func (env *testEnv) seedJudge(t *testing.T, judgeID, eventID string) string {
	t.Helper()
	session := &storage.ConsoleSession{
		Token:       "JUDGETOKEN" + judgeID,
		Role:        storage.RoleJudge,
		AccessToken: "judge-bearer",
		UserID:      judgeID,
		Name:        "Judge Hart",
		Email:       "hart@example.com",
		EventID:     eventID,
	}
	if err := env.sessions.Put(context.Background(), session); err != nil {
		t.Fatalf("seed judge session: %v", err)
	}
	return session.Token
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(res.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response body %q: %v", res.Body.String(), err)
	}
}
