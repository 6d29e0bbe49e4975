package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mateusmlo/daily-diet-be/internal/models"
	"github.com/mateusmlo/daily-diet-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	users map[string]models.User
}

func (s stubResolver) GetUserBySession(token string) (models.User, error) {
	if user, ok := s.users[token]; ok {
		return user, nil
	}
	return models.User{}, services.ErrNoSession
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/meals", nil)
	assert.Empty(t, TokenFromRequest(req))

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok"})
	assert.Equal(t, "tok", TokenFromRequest(req))
}

func TestSetCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, "tok", false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, CookieMaxAge, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestMiddleware(t *testing.T) {
	resolver := stubResolver{users: map[string]models.User{
		"tok": {ID: "user-1", Username: "johndoe"},
	}}

	handler := Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		require.True(t, ok)
		assert.Equal(t, "user-1", user.ID)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("resolved session reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing cookie is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "nope"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
