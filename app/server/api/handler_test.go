package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/portfolio/app/server/api/mocks"
	"github.com/umputun/portfolio/app/server/internal"
	"github.com/umputun/portfolio/app/store"
	"github.com/umputun/portfolio/app/theme"
)

func TestHandler_HandleGet(t *testing.T) {
	t.Run("new visitor", func(t *testing.T) {
		h := newTestHandler(newMemStore())
		rec := httptest.NewRecorder()
		h.handleGet(rec, httptest.NewRequest(http.MethodGet, "/api/theme", http.NoBody))

		require.Equal(t, http.StatusOK, rec.Code)
		var st State
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
		assert.Equal(t, State{Preference: "system", Resolved: "light", Class: "", Label: "⚙️ System"}, st)
		assert.NotEmpty(t, rec.Result().Cookies())
	})

	t.Run("stored dark", func(t *testing.T) {
		h := newTestHandler(fixedStore("dark"))
		rec := httptest.NewRecorder()
		h.handleGet(rec, httptest.NewRequest(http.MethodGet, "/api/theme", http.NoBody))

		var st State
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
		assert.Equal(t, "dark", st.Preference)
		assert.Equal(t, "dark", st.Resolved)
		assert.Equal(t, "dark", st.Class)
	})

	t.Run("system with client hint", func(t *testing.T) {
		h := newTestHandler(fixedStore("system"))
		req := httptest.NewRequest(http.MethodGet, "/api/theme", http.NoBody)
		req.Header.Set(internal.SchemeHintHeader, "dark")
		rec := httptest.NewRecorder()
		h.handleGet(rec, req)

		var st State
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
		assert.Equal(t, "system", st.Preference)
		assert.Equal(t, "dark", st.Resolved)
		assert.True(t, st.SchemeKnown)
	})
}

func TestHandler_HandleSet(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
		pref string
	}{
		{name: "dark", body: `{"theme":"dark"}`, code: http.StatusOK, pref: "dark"},
		{name: "system", body: `{"theme":"system"}`, code: http.StatusOK, pref: "system"},
		{name: "unknown", body: `{"theme":"sepia"}`, code: http.StatusBadRequest},
		{name: "missing", body: `{}`, code: http.StatusBadRequest},
		{name: "broken json", body: `{"theme":`, code: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := newMemStore()
			h := newTestHandler(st)
			rec := httptest.NewRecorder()
			h.handleSet(rec, httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(tc.body)))

			assert.Equal(t, tc.code, rec.Code)
			if tc.code != http.StatusOK {
				assert.Empty(t, st.SetCalls())
				assert.Contains(t, rec.Body.String(), `"error"`)
				return
			}
			var res State
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, tc.pref, res.Preference)
			require.Len(t, st.SetCalls(), 1)
			assert.Equal(t, theme.StorageKey, st.SetCalls()[0].Key)
		})
	}
}

func TestHandler_Routes(t *testing.T) {
	st := newMemStore()
	h := newTestHandler(st)
	router := routegroup.New(http.NewServeMux())
	router.Mount("/api").Route(h.Register)

	// first request mints the visitor
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/theme", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	visitor := rec.Result().Cookies()[0]

	expected := []string{"light", "dark", "system", "light"}
	for i, pref := range expected {
		req := httptest.NewRequest(http.MethodPost, "/api/theme/cycle", http.NoBody)
		req.AddCookie(visitor)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "step %d", i)

		var res State
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, pref, res.Preference, "step %d", i)
	}

	// persisted value survives into a fresh request
	req := httptest.NewRequest(http.MethodGet, "/api/theme", http.NoBody)
	req.AddCookie(visitor)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var res State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "light", res.Preference)
}

func TestHandler_ResetAndList(t *testing.T) {
	st := newMemStore()
	h := newTestHandler(st)
	router := routegroup.New(http.NewServeMux())
	router.Mount("/api").Route(h.Register)

	send := func(method, path, body string, c *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if c != nil {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := send(http.MethodPut, "/api/theme", `{"theme":"dark"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	visitor := rec.Result().Cookies()[0]

	rec = send(http.MethodGet, "/api/preferences", "", visitor)
	require.Equal(t, http.StatusOK, rec.Code)
	var prefs []StoredPreference
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	require.Len(t, prefs, 1)
	assert.Equal(t, theme.StorageKey, prefs[0].Key)
	assert.Equal(t, "dark", prefs[0].Value)

	rec = send(http.MethodDelete, "/api/theme", "", visitor)
	require.Equal(t, http.StatusOK, rec.Code)
	var res State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "system", res.Preference)
	assert.Equal(t, "light", res.Resolved)
	assert.Empty(t, st.SetCalls()[1:], "reset does not write the preference back")

	// reset of a visitor without stored preference is not an error
	rec = send(http.MethodDelete, "/api/theme", "", visitor)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = send(http.MethodGet, "/api/preferences", "", visitor)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_ResetAndList_StoreErrors(t *testing.T) {
	st := &mocks.PrefStoreMock{
		DeleteFunc: func(context.Context, string, string) error { return errors.New("db is gone") },
		ListFunc:   func(context.Context, string) ([]store.Preference, error) { return nil, errors.New("db is gone") },
	}
	h := newTestHandler(st)

	rec := httptest.NewRecorder()
	h.handleReset(rec, httptest.NewRequest(http.MethodDelete, "/api/theme", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	h.handleList(rec, httptest.NewRequest(http.MethodGet, "/api/preferences", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func newTestHandler(st PrefStore) *Handler {
	return New(st, internal.NewVisitors("test-secret", "/"))
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

func fixedStore(pref string) *mocks.PrefStoreMock {
	return &mocks.PrefStoreMock{
		GetFunc: func(context.Context, string, string) (string, error) { return pref, nil },
		SetFunc: func(context.Context, string, string, string) error { return nil },
	}
}
