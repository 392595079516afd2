package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hyperjump/atsumeru/internal/aggregator"
	"github.com/hyperjump/atsumeru/internal/auth"
	"github.com/hyperjump/atsumeru/internal/cache"
	"github.com/hyperjump/atsumeru/internal/config"
	"github.com/hyperjump/atsumeru/internal/curated"
	"github.com/hyperjump/atsumeru/internal/models"
	"github.com/hyperjump/atsumeru/internal/source"
)

// newTestServer wires a full stack against fake upstream endpoints: one portal
// returning a single documentation hit and one gated endpoint.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	portal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"title":"Incident overview","summary":"Docs hit","url":"https://docs.example.com/a"}]}`))
	}))
	t.Cleanup(portal.Close)

	gatedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"title":"Member article","body":"full text","url":"https://learn.example.com/a"}]}`))
	}))
	t.Cleanup(gatedSrv.Close)

	client := source.NewHTTPClient(time.Second)
	adapters := []source.Adapter{
		source.NewDocumentation(portal.URL, client),
		source.NewGated(gatedSrv.URL, client),
	}

	mem, err := cache.NewMemory(100, time.Minute)
	require.NoError(t, err)
	agg := aggregator.New(adapters, curated.NewSet(curated.DefaultEntries()), mem, auth.NewState(), time.Second, zap.NewNop())

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	return NewServer(agg, cfg, zap.NewNop())
}

func doJSON(t *testing.T, srv *Server, method, target, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	srv.routes().ServeHTTP(w, r)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(out))
	}
	return w
}

func TestHandleSearchGet(t *testing.T) {
	srv := newTestServer(t)
	var resp models.SearchResponse
	w := doJSON(t, srv, http.MethodGet, "/api/v1/search?q=incident", "", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, resp.Results)
	assert.True(t, resp.NeedsLogin, "unauthenticated search carries the gated teaser")
	assert.True(t, resp.Results[0].Curated, "curated entries lead the list")
}

func TestHandleSearchPost(t *testing.T) {
	srv := newTestServer(t)
	var resp models.SearchResponse
	w := doJSON(t, srv, http.MethodPost, "/api/v1/search", `{"query":"incident"}`, &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "incident", resp.Query)
	assert.NotEmpty(t, resp.Results)
}

func TestHandleSearchEmptyQuery(t *testing.T) {
	srv := newTestServer(t)
	var resp models.SearchResponse
	w := doJSON(t, srv, http.MethodGet, "/api/v1/search?q=", "", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Results)
}

func TestHandleSearchBadBody(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/api/v1/search", `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLoginValidation(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var status struct {
		Authenticated bool `json:"authenticated"`
	}
	doJSON(t, srv, http.MethodGet, "/api/v1/auth/status", "", &status)
	assert.False(t, status.Authenticated, "rejected login must not mutate auth state")
}

func TestLoginLogoutFlow(t *testing.T) {
	srv := newTestServer(t)

	var login struct {
		Authenticated bool   `json:"authenticated"`
		Token         string `json:"token"`
	}
	w := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"secret"}`, &login)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, login.Authenticated)
	assert.NotEmpty(t, login.Token)

	var authed models.SearchResponse
	doJSON(t, srv, http.MethodGet, "/api/v1/search?q=incident", "", &authed)
	assert.False(t, authed.NeedsLogin, "authenticated search gets full gated content")

	w = doJSON(t, srv, http.MethodPost, "/api/v1/auth/logout", "{}", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var after models.SearchResponse
	doJSON(t, srv, http.MethodGet, "/api/v1/search?q=incident", "", &after)
	assert.False(t, after.CacheHit, "logout purges cached entries")
	assert.True(t, after.NeedsLogin, "post-logout search flips back to the teaser")
}

func TestHandleSources(t *testing.T) {
	srv := newTestServer(t)
	var resp struct {
		Sources []models.Source `json:"sources"`
	}
	doJSON(t, srv, http.MethodGet, "/api/v1/sources", "", &resp)
	assert.Equal(t, []models.Source{models.SourceDocumentation, models.SourceGated}, resp.Sources)
}

func TestHandleConfig(t *testing.T) {
	srv := newTestServer(t)
	var resp struct {
		UI struct {
			DebounceMS int `json:"debounce_ms"`
		} `json:"ui"`
	}
	doJSON(t, srv, http.MethodGet, "/api/v1/config", "", &resp)
	assert.Equal(t, 500, resp.UI.DebounceMS)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
