package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
	"github.com/influmatch/influmatch-go/pkg/session"
)

// navRecorder records navigation calls for asserting forced-logout behavior.
type navRecorder struct {
	mu          sync.Mutex
	current     string
	navigations []string
}

func (n *navRecorder) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *navRecorder) NavigateTo(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.navigations = append(n.navigations, path)
	n.current = path
}

func authedStore(t *testing.T, sessionID, token string) *session.Store {
	t.Helper()

	store := session.New(session.NewMemoryStorage())
	store.SetAuthenticated(context.Background(), sessionID, token, &session.User{ID: "u1", Email: "a@b.com", Role: "creator"})
	return store
}

func TestClient_CredentialAttachment(t *testing.T) {
	t.Parallel()

	var gotSession, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get("X-Session-ID")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Run("both credentials", func(t *testing.T) {
		client := apiclient.New(server.URL, apiclient.WithCredentialSource(authedStore(t, "sid1", "tok1")))
		_, err := client.Get(context.Background(), "/creators/me", nil)
		require.NoError(t, err)
		assert.Equal(t, "sid1", gotSession)
		assert.Equal(t, "Bearer tok1", gotAuth)
	})

	t.Run("session only", func(t *testing.T) {
		client := apiclient.New(server.URL, apiclient.WithCredentialSource(authedStore(t, "sid2", "")))
		_, err := client.Get(context.Background(), "/creators/me", nil)
		require.NoError(t, err)
		assert.Equal(t, "sid2", gotSession)
		assert.Empty(t, gotAuth)
	})

	t.Run("no credential source", func(t *testing.T) {
		client := apiclient.New(server.URL)
		_, err := client.Get(context.Background(), "/campaigns/active", nil)
		require.NoError(t, err)
		assert.Empty(t, gotSession)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_QueryParamOmission(t *testing.T) {
	t.Parallel()

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	_, err := client.Get(context.Background(), "/campaigns/search", map[string]any{
		"q":      "beauty brand",
		"limit":  10,
		"recent": true,
		"cursor": nil,
	})
	require.NoError(t, err)

	values, err := url.ParseQuery(gotQuery)
	require.NoError(t, err)
	assert.Equal(t, "beauty brand", values.Get("q"))
	assert.Equal(t, "10", values.Get("limit"))
	assert.Equal(t, "true", values.Get("recent"))
	assert.NotContains(t, values, "cursor", "nil params are dropped, not serialized")
}

func TestClient_HeaderOverridesWin(t *testing.T) {
	t.Parallel()

	var gotContentType, gotCustom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("X-Client-Version")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	_, err := client.Post(context.Background(), "/campaigns", map[string]any{"title": "x"},
		apiclient.WithHeader("Content-Type", "application/vnd.influmatch+json"),
		apiclient.WithHeader("X-Client-Version", "1.2.3"),
	)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.influmatch+json", gotContentType)
	assert.Equal(t, "1.2.3", gotCustom)
}

func TestClient_UnauthorizedClearsSessionAndRedirects(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	storage := session.NewMemoryStorage()
	store := session.New(storage)
	store.SetAuthenticated(context.Background(), "sid1", "tok1", &session.User{ID: "u1"})

	nav := &navRecorder{current: "/dashboard"}
	client := apiclient.New(server.URL,
		apiclient.WithCredentialSource(store),
		apiclient.WithNavigator(nav),
	)

	_, err := client.Get(context.Background(), "/creators/me", nil)
	require.Error(t, err)
	assert.True(t, apiclient.IsUnauthorized(err))

	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	assert.False(t, store.IsAuthenticated(), "401 clears the session store")
	for _, key := range []string{session.KeySessionID, session.KeyToken, session.KeyUser} {
		_, err := storage.Get(context.Background(), key)
		assert.ErrorIs(t, err, session.ErrKeyNotFound, "durable key %q is removed", key)
	}
	assert.Equal(t, []string{"/login"}, nav.navigations)
}

func TestClient_UnauthorizedOnLoginPageSkipsRedirect(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	nav := &navRecorder{current: "/login"}
	client := apiclient.New(server.URL, apiclient.WithNavigator(nav))

	_, err := client.Post(context.Background(), "/auth/login", map[string]any{"email": "a@b.com", "password": "nope"})
	assert.True(t, apiclient.IsUnauthorized(err))
	assert.Empty(t, nav.navigations, "no redirect when already at the login entry point")
}

func TestClient_UnauthenticatedGetReceives401(t *testing.T) {
	t.Parallel()

	var sawAuthHeaders bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuthHeaders = r.Header.Get("X-Session-ID") != "" || r.Header.Get("Authorization") != ""
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := session.New(session.NewMemoryStorage())
	nav := &navRecorder{current: "/campaigns"}
	client := apiclient.New(server.URL,
		apiclient.WithCredentialSource(store),
		apiclient.WithNavigator(nav),
	)

	_, err := client.Get(context.Background(), "/campaigns/active", nil)
	require.Error(t, err)

	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, sawAuthHeaders, "request went out without auth headers")
	assert.False(t, store.IsAuthenticated(), "clearing an empty store is a no-op")
	assert.Equal(t, []string{"/login"}, nav.navigations)
}

func TestClient_ForbiddenDoesNotLogOut(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"creators cannot manage campaigns","code":"ROLE_FORBIDDEN"}`))
	}))
	defer server.Close()

	store := authedStore(t, "sid1", "tok1")
	nav := &navRecorder{current: "/dashboard"}
	client := apiclient.New(server.URL,
		apiclient.WithCredentialSource(store),
		apiclient.WithNavigator(nav),
	)

	_, err := client.Delete(context.Background(), "/campaigns/c1", apiclient.WithRetries(3))
	require.Error(t, err)
	assert.True(t, apiclient.IsForbidden(err))

	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "creators cannot manage campaigns", apiErr.Message)
	assert.Equal(t, "ROLE_FORBIDDEN", apiErr.Code)

	assert.True(t, store.IsAuthenticated(), "403 leaves credentials untouched")
	assert.Equal(t, "sid1", store.SessionID())
	assert.Empty(t, nav.navigations)
}

func TestClient_RetryBudget(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	var timestamps []time.Time
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		mu.Lock()
		timestamps = append(timestamps, time.Now())
		mu.Unlock()
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	delay := 30 * time.Millisecond
	client := apiclient.New(server.URL)
	_, err := client.Get(context.Background(), "/campaigns", nil,
		apiclient.WithRetries(2),
		apiclient.WithRetryDelay(delay),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, apiclient.ErrRequestFailed)
	assert.Equal(t, int32(3), attempts.Load(), "retryCount=2 means 3 transport invocations")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, timestamps, 3)
	assert.GreaterOrEqual(t, timestamps[1].Sub(timestamps[0]), delay, "first backoff waits delay×1")
	assert.GreaterOrEqual(t, timestamps[2].Sub(timestamps[1]), 2*delay-5*time.Millisecond, "second backoff waits delay×2")
}

func TestClient_NoRetryByDefault(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	_, err := client.Get(context.Background(), "/campaigns", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_TimeoutShortCircuitsRetries(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	start := time.Now()
	_, err := client.Get(context.Background(), "/analytics/overview", nil,
		apiclient.WithTimeout(50*time.Millisecond),
		apiclient.WithRetries(5),
	)
	require.Error(t, err)
	assert.True(t, apiclient.IsTimeout(err))

	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestTimeout, apiErr.Status)
	assert.Equal(t, int32(1), attempts.Load(), "a hung call is not retried")
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestClient_NetworkFailureIsRetriedThenEscalated(t *testing.T) {
	t.Parallel()

	// A server that is already closed yields connection-refused errors.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := apiclient.New(server.URL)
	_, err := client.Get(context.Background(), "/campaigns", nil,
		apiclient.WithRetries(1),
		apiclient.WithRetryDelay(5*time.Millisecond),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, apiclient.ErrRequestFailed)
}

func TestClient_ContentTypeDispatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"a":1}`))
		case "/text":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("hello"))
		case "/binary":
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte{0x25, 0x50, 0x44, 0x46})
		}
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	ctx := context.Background()

	jsonResp, err := client.Get(ctx, "/json", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, jsonResp.Data)

	textResp, err := client.Get(ctx, "/text", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", textResp.Data)

	binResp, err := client.Get(ctx, "/binary", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x25, 0x50, 0x44, 0x46}, binResp.Data)
}

func TestClient_ErrorClassificationFromBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/structured":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"budget must be positive","code":"VALIDATION","details":{"field":"budget"}}`))
		case "/opaque":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	ctx := context.Background()

	_, err := client.Post(ctx, "/structured", map[string]any{"budget": -1})
	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "budget must be positive", apiErr.Message)
	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.Equal(t, map[string]any{"field": "budget"}, apiErr.Details)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)

	_, err = client.Get(ctx, "/opaque", nil)
	apiErr, ok = apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Request failed with status 502", apiErr.Message)
	assert.Empty(t, apiErr.Code)
}

func TestClient_SessionHeaderAttachedAfterLogin(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	requests := make(map[string]string)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests[r.URL.Path] = r.Header.Get("X-Session-ID")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"user":{"id":"u1","email":"a@b.com","role":"creator"},"access_token":"tok-new","session_id":"sid-new"}`))
		default:
			w.Write([]byte(`{"id":"u1"}`))
		}
	}))
	defer server.Close()

	store := session.New(session.NewMemoryStorage())
	client := apiclient.New(server.URL, apiclient.WithCredentialSource(store))
	ctx := context.Background()

	resp, err := client.Post(ctx, "/auth/login", map[string]any{"email": "a@b.com", "password": "s3cret"})
	require.NoError(t, err)

	payload, err := apiclient.Decode[struct {
		User        session.User `json:"user"`
		AccessToken string       `json:"access_token"`
		SessionID   string       `json:"session_id"`
	}](resp)
	require.NoError(t, err)
	store.SetAuthenticated(ctx, payload.SessionID, payload.AccessToken, &payload.User)

	_, err = client.Get(ctx, "/creators/me", nil)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, requests["/auth/login"], "login request itself carries no session header")
	assert.Equal(t, "sid-new", requests["/creators/me"], "subsequent calls carry the new session automatically")
}

func TestClient_AbsoluteEndpointBypassesBaseURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/external/hook", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := apiclient.New("http://influmatch.invalid/v1")
	_, err := client.Get(context.Background(), server.URL+"/external/hook", map[string]any{"x": 1})
	require.NoError(t, err)
}
