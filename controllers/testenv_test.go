package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jacintha05/ElectoVote/config"
	"github.com/jacintha05/ElectoVote/routes"
	"github.com/jacintha05/ElectoVote/storage"
	"github.com/jacintha05/ElectoVote/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockMailer records dispatched notifications so tests can assert the
// fire-and-forget side effect without SMTP.
type mockMailer struct {
	sent chan notification
}

type notification struct {
	candidateName  string
	candidateEmail string
	voterName      string
}

func newMockMailer() *mockMailer {
	return &mockMailer{sent: make(chan notification, 16)}
}

func (m *mockMailer) SendVoteNotification(candidateName, candidateEmail, voterName string) error {
	m.sent <- notification{candidateName, candidateEmail, voterName}
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Port:             "0",
		JWTSecret:        []byte("test-secret"),
		SystemKey:        "test-system-key",
		RegisteredVoters: 12847,
	}
}

func newTestEnv(t *testing.T) (*gin.Engine, storage.Storage, *mockMailer) {
	t.Helper()
	store := storage.New(testutil.OpenTestDB(t))
	mailer := newMockMailer()
	router := routes.SetupRouter(testConfig(), store, mailer)
	return router, store, mailer
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}
