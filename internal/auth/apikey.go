package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// RequireAPIKey rejects requests whose x-api-key header (or apiKey query
// parameter) does not match key. An empty key means the server was started
// without one and every request fails with 500.
func RequireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				reject(w, http.StatusInternalServerError, "API is not configured")
				return
			}

			provided := r.Header.Get("x-api-key")
			if provided == "" {
				provided = r.URL.Query().Get("apiKey")
			}
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				reject(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func reject(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
