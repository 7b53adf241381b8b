package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type ctxKey string

const visitorIDKey ctxKey = "visitor_id"

func VisitorIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(visitorIDKey).(string)
	return v, ok && v != ""
}

// OptionalVisitor verifies a bearer visitor token when one is sent and puts
// its subject in the request context. Requests without a valid token pass
// through with no visitor id; a nil tokens disables the check entirely.
func OptionalVisitor(tokens *VisitorTokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if tokens == nil || !strings.HasPrefix(h, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			id, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("ignoring visitor token")
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), visitorIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
