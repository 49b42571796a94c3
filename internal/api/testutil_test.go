package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joestump/worklog/internal/api"
	"github.com/joestump/worklog/internal/auth"
	"github.com/joestump/worklog/internal/logger"
	"github.com/joestump/worklog/internal/store"
	"github.com/joestump/worklog/internal/testutil"
)

const testPassword = "secret"

// testEnv holds the router and store used by API integration tests.
type testEnv struct {
	Router      http.Handler
	RecordStore *store.RecordStore
	Token       string
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full router with a real record store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	rs := store.NewRecordStore(db)

	router := api.NewRouter(api.Deps{
		BearerAuth:  auth.NewBearerTokenMiddleware(testPassword),
		RecordStore: rs,
		Logger:      logger.Nop(),
	})
	return &testEnv{
		Router:      router,
		RecordStore: rs,
		Token:       auth.NewPasswordToken(testPassword),
	}
}

// seedRecord inserts a record directly through the store.
func seedRecord(t *testing.T, env *testEnv, content string, tags ...string) *store.Record {
	t.Helper()
	r, err := env.RecordStore.Create(context.Background(), content, tags)
	if err != nil {
		t.Fatalf("seed record: %v", err)
	}
	return r
}

// do sends an authenticated request and returns the recorder.
func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	authRequest(req, env.Token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v; body: %s", err, rec.Body.String())
	}
	return v
}
