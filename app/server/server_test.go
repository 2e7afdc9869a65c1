package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/portfolio/app/server/mocks"
	"github.com/umputun/portfolio/app/store"
	"github.com/umputun/portfolio/app/tokens"
)

func TestNew(t *testing.T) {
	t.Run("requires tokens", func(t *testing.T) {
		_, err := New(newMemStore(), nil, Config{})
		require.Error(t, err)
	})

	t.Run("compiles tokens with base url fonts", func(t *testing.T) {
		srv := newTestServer(t, Config{BaseURL: "/portfolio"})
		assert.Contains(t, string(srv.tokensCSS), `url("/portfolio/fonts/general-sans/`)
	})
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, Config{Version: "test"})
	h := srv.routes()

	tests := []struct {
		name     string
		method   string
		path     string
		code     int
		contains string
		ctype    string
	}{
		{name: "ping", method: http.MethodGet, path: "/ping", code: http.StatusOK, contains: "pong"},
		{name: "index", method: http.MethodGet, path: "/", code: http.StatusOK, contains: "Design System Test", ctype: "text/html"},
		{name: "tokens css", method: http.MethodGet, path: "/static/tokens.css", code: http.StatusOK, contains: "--neutral-1:", ctype: "text/css"},
		{name: "code css", method: http.MethodGet, path: "/static/code.css", code: http.StatusOK, contains: ".dark .chroma", ctype: "text/css"},
		{name: "site css", method: http.MethodGet, path: "/static/site.css", code: http.StatusOK, contains: ".theme-toggle"},
		{name: "theme js", method: http.MethodGet, path: "/static/theme.js", code: http.StatusOK, contains: "themeChanged"},
		{name: "toggle partial", method: http.MethodGet, path: "/web/theme", code: http.StatusOK, contains: `id="theme-toggle"`},
		{name: "api theme", method: http.MethodGet, path: "/api/theme", code: http.StatusOK, contains: `"preference":"system"`},
		{name: "fonts disabled", method: http.MethodGet, path: "/fonts/x.woff2", code: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, http.NoBody)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code)
			if tc.contains != "" {
				assert.Contains(t, rec.Body.String(), tc.contains)
			}
			if tc.ctype != "" {
				assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tc.ctype), rec.Header().Get("Content-Type"))
			}
		})
	}

	t.Run("app info header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		assert.Equal(t, "portfolio", rec.Header().Get("App-Name"))
		assert.Equal(t, "test", rec.Header().Get("App-Version"))
	})
}

func TestServer_Fonts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "general-sans"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "general-sans", "GeneralSans-Variable.woff2"), []byte("font"), 0o600))

	srv := newTestServer(t, Config{FontsDir: dir})
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fonts/general-sans/GeneralSans-Variable.woff2", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "font", rec.Body.String())
}

func TestServer_BaseURL(t *testing.T) {
	srv := newTestServer(t, Config{BaseURL: "/portfolio"})
	h := srv.handler()

	t.Run("redirects bare base", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portfolio", http.NoBody))
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/portfolio/", rec.Header().Get("Location"))
	})

	t.Run("serves prefixed page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portfolio/", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `href="/portfolio/static/tokens.css"`)
		assert.Contains(t, body, `data-base="/portfolio"`)
		for _, c := range rec.Result().Cookies() {
			assert.Equal(t, "/portfolio/", c.Path)
		}
	})

	t.Run("unprefixed path not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/theme", http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_VisitorSharedBetweenWebAndAPI(t *testing.T) {
	st := newMemStore()
	srv := newTestServer(t, Config{Secret: "s"}, st)
	h := srv.routes()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/web/theme", strings.NewReader("theme=dark"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/api/theme", http.NoBody)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), `"preference":"dark"`)
	assert.Contains(t, rec.Body.String(), `"class":"dark"`)
}

func TestServer_Run(t *testing.T) {
	srv := newTestServer(t, Config{Address: "127.0.0.1:0", ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func newTestServer(t *testing.T, cfg Config, st ...PrefStore) *Server {
	t.Helper()
	ts, err := tokens.Default()
	require.NoError(t, err)
	var prefs PrefStore = newMemStore()
	if len(st) > 0 {
		prefs = st[0]
	}
	srv, err := New(prefs, ts, cfg)
	require.NoError(t, err)
	return srv
}

// newMemStore returns a PrefStore mock backed by a map.
func newMemStore() *mocks.PrefStoreMock {
	var mu sync.Mutex
	data := map[string]string{}
	return &mocks.PrefStoreMock{
		GetFunc: func(_ context.Context, visitor, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[visitor+"/"+key]
			if !ok {
				return "", store.ErrNotFound
			}
			return v, nil
		},
		SetFunc: func(_ context.Context, visitor, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			data[visitor+"/"+key] = value
			return nil
		},
		DeleteFunc: func(_ context.Context, visitor, key string) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := data[visitor+"/"+key]; !ok {
				return store.ErrNotFound
			}
			delete(data, visitor+"/"+key)
			return nil
		},
		ListFunc: func(_ context.Context, visitor string) ([]store.Preference, error) {
			mu.Lock()
			defer mu.Unlock()
			var res []store.Preference
			for k, v := range data {
				if vis, key, _ := strings.Cut(k, "/"); vis == visitor {
					res = append(res, store.Preference{Visitor: vis, Key: key, Value: v})
				}
			}
			return res, nil
		},
	}
}
