package session

import (
	"context"
	"net/http"

	"github.com/mateusmlo/daily-diet-be/internal/models"
	"github.com/rs/zerolog/log"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_id"

// CookieMaxAge is how long a freshly issued cookie lives (7 days). The
// token itself never expires server-side; only the cookie does.
const CookieMaxAge = 7 * 24 * 60 * 60

type contextKey string

const userKey = contextKey("sessionUser")

// Resolver maps a session token to its user. Implemented by the user
// service.
type Resolver interface {
	GetUserBySession(token string) (models.User, error)
}

// TokenFromRequest reads the session token from the request cookie. An
// absent cookie yields the empty string.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetCookie instructs the client to store the session token.
func SetCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// UserFrom returns the user the middleware resolved for this request.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

// Middleware resolves the session cookie to a user and stores it in the
// request context. Requests without a resolvable token are rejected with
// 401 before any handler runs.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			user, err := resolver.GetUserBySession(token)
			if err != nil {
				log.Debug().Str("path", r.URL.Path).Msg("Rejected request without valid session")
				http.Error(w, "Missing or invalid session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
