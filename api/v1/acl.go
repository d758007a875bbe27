package v1

import (
	"context"
	"net/http"

	"github.com/flipbooklib/flipbook/api/auth"
	"github.com/flipbooklib/flipbook/http/request"
	"github.com/flipbooklib/flipbook/http/response"
	"github.com/flipbooklib/flipbook/log"
	"go.uber.org/zap"
)

type AuthInterceptor struct{}

func NewAuthInterceptor() *AuthInterceptor {
	return &AuthInterceptor{}
}

// AuthenticationInterceptor guards the admin surface. Everything else passes
// through untouched, with session claims attached when a valid token rides
// along.
func (m *AuthInterceptor) AuthenticationInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := auth.ExtractAccessToken(r)

		claims, err := auth.ParseSession(accessToken)
		if err == nil {
			ctx := r.Context()
			ctx = context.WithValue(ctx, request.IsAuthenticatedContextKey, true)
			ctx = context.WithValue(ctx, request.SessionEmailContextKey, claims.Email)
			r = r.WithContext(ctx)
		}

		if isProtected(r) && err != nil {
			log.Debug("Rejected unauthenticated admin request",
				zap.String("client_ip", request.FindClientIP(r)),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			response.Unauthorized(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isProtected(r *http.Request) bool {
	path := r.URL.Path
	switch {
	case path == "/api/v1/admin/ebooks":
		return true
	case path == "/api/v1/uploads":
		return true
	case path == "/api/v1/ebooks" && r.Method == http.MethodPost:
		return true
	case r.Method == http.MethodDelete:
		return true
	}
	return false
}
