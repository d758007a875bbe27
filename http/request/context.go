package request

import "net/http"

type ContextKey int

const (
	ClientIPContextKey ContextKey = iota
	IsAuthenticatedContextKey
	SessionEmailContextKey
)

func getContextStringValue(r *http.Request, key ContextKey) string {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(string); valid {
			return value
		}
	}
	return ""
}

// ClientIP returns the client IP address stored in the context.
func ClientIP(r *http.Request) string {
	return getContextStringValue(r, ClientIPContextKey)
}

// SessionEmail returns the signed-in operator's email, when present.
func SessionEmail(r *http.Request) string {
	return getContextStringValue(r, SessionEmailContextKey)
}

// IsAuthenticated reports whether the auth middleware accepted a session.
func IsAuthenticated(r *http.Request) bool {
	if v := r.Context().Value(IsAuthenticatedContextKey); v != nil {
		if value, valid := v.(bool); valid {
			return value
		}
	}
	return false
}
