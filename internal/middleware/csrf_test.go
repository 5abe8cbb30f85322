package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/csrf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSRFKey(t *testing.T) {
	t.Run("hex key", func(t *testing.T) {
		key, err := LoadCSRFKey(strings.Repeat("ab", 32), true)
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("short key", func(t *testing.T) {
		_, err := LoadCSRFKey("abcd", false)
		assert.Error(t, err)
	})

	t.Run("missing key in production", func(t *testing.T) {
		_, err := LoadCSRFKey("", true)
		assert.Error(t, err)
	})

	t.Run("random key in development", func(t *testing.T) {
		key, err := LoadCSRFKey("", false)
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	key, err := LoadCSRFKey(strings.Repeat("01", 32), false)
	require.NoError(t, err)

	var field string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		field = string(csrf.TemplateField(r))
		w.WriteHeader(http.StatusOK)
	})
	h := CSRF(key, false)(next)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/new", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, field, `name="csrf_token"`)

	form := url.Values{"full_name": {"Anna"}}
	req := httptest.NewRequest(http.MethodPost, "/clients/save", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
