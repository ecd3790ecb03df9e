package middleware

import (
	"context"
	"net/http"
)

type callerIDKey struct{}

// Auth trusts the identity the upstream authentication proxy verified and
// forwarded in X-User-Id. An empty value is passed through; the services
// reject unauthenticated callers themselves.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), callerIDKey{}, r.Header.Get("X-User-Id"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CallerID(ctx context.Context) string {
	callerID, _ := ctx.Value(callerIDKey{}).(string)
	return callerID
}
