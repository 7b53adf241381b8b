package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"poetry/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityResolution(t *testing.T) {
	tokens := auth.NewVisitorTokens("secret")
	visitorID, token, err := tokens.Issue()
	require.NoError(t, err)

	// run the request through OptionalVisitor so the context carries the id
	withVisitor := func(r *http.Request) *http.Request {
		r.Header.Set("Authorization", "Bearer "+token)
		var out *http.Request
		auth.OptionalVisitor(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			out = r
		})).ServeHTTP(httptest.NewRecorder(), r)
		require.NotNil(t, out)
		return out
	}

	body := "from-body"
	blank := "   "

	tests := []struct {
		name   string
		build  func() *http.Request
		body   *string
		userID string
	}{
		{
			name:  "address only",
			build: func() *http.Request { return httptest.NewRequest(http.MethodGet, "/", nil) },
		},
		{
			name: "header",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/", nil)
				r.Header.Set("x-user-id", "from-header")
				return r
			},
			userID: "from-header",
		},
		{
			name: "query beats header",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/?userId=from-query", nil)
				r.Header.Set("x-user-id", "from-header")
				return r
			},
			userID: "from-query",
		},
		{
			name:   "body beats query",
			build:  func() *http.Request { return httptest.NewRequest(http.MethodPost, "/?userId=from-query", nil) },
			body:   &body,
			userID: "from-body",
		},
		{
			name:   "blank body falls through",
			build:  func() *http.Request { return httptest.NewRequest(http.MethodPost, "/?userId=from-query", nil) },
			body:   &blank,
			userID: "from-query",
		},
		{
			name:   "visitor token",
			build:  func() *http.Request { return withVisitor(httptest.NewRequest(http.MethodGet, "/", nil)) },
			userID: visitorID,
		},
		{
			name: "header beats visitor token",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/", nil)
				r.Header.Set("x-user-id", "from-header")
				return withVisitor(r)
			},
			userID: "from-header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := identity(tt.build(), tt.body)
			assert.Equal(t, tt.userID, id.UserID)
			assert.Equal(t, "192.0.2.1", id.Address)
		})
	}
}

func TestClientIPWithoutPort(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientIP(r))

	r.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientIP(r))
}
