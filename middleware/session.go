package middleware

import (
	"context"
	"net/http"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SessionContextKey = contextKey("session")
	SessionHeader     = "X-Session-ID"
	SessionCookie     = "shinmen_session"
)

var validSessionID = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// SessionMiddleware binds every request to a browser session.
// The id comes from the X-Session-ID header or the session cookie; a new one is minted otherwise.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		if id == "" {
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = c.Value
			}
		}
		if !validSessionID.MatchString(id) {
			id = primitive.NewObjectID().Hex()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   365 * 24 * 60 * 60,
			})
		}
		w.Header().Set(SessionHeader, id)

		ctx := context.WithValue(r.Context(), SessionContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session bound by SessionMiddleware
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionContextKey).(string)
	return id, ok && id != ""
}
