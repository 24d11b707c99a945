package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const accountKeyCtx ctxKey = "account_key"

func AccountKeyFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(accountKeyCtx)
	key, ok := v.(string)
	return key, ok
}

// RequireAuth resolves the account key from the bearer token and puts
// it in the request context. Every tenant-scoped handler reads the key
// from there and nowhere else.
func RequireAuth(jwtSvc *JWT) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			token := strings.TrimPrefix(h, "Bearer ")

			key, err := jwtSvc.Verify(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accountKeyCtx, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
