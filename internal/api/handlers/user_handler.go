package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/mateusmlo/daily-diet-be/internal/metrics"
	"github.com/mateusmlo/daily-diet-be/internal/services"
	"github.com/mateusmlo/daily-diet-be/internal/session"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for registration.
type UserHandler struct {
	service      services.UserServiceProvider
	secureCookie bool
}

// NewUserHandler creates a new UserHandler. secureCookie marks issued
// cookies Secure (production behind TLS).
func NewUserHandler(service services.UserServiceProvider, secureCookie bool) *UserHandler {
	return &UserHandler{service: service, secureCookie: secureCookie}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Validate checks the payload against the registration constraints.
func (p RegisterPayload) Validate() error {
	if l := len(p.Username); l < 3 || l > 255 {
		return fmt.Errorf("%w: username must be 3-255 characters", services.ErrValidation)
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return fmt.Errorf("%w: email is not valid", services.ErrValidation)
	}
	return nil
}

// Register handles new user registration. A client that already holds a
// session cookie keeps its token; otherwise a fresh one is issued and set as
// a 7-day cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inboundToken := session.TokenFromRequest(r)

	user, err := h.service.Register(payload.Username, payload.Email, inboundToken)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			http.Error(w, "Username or email already taken", http.StatusConflict)
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	if inboundToken == "" {
		session.SetCookie(w, user.SessionID, h.secureCookie)
	}

	metrics.UsersRegistered.Inc()
	log.Info().Str("user_id", user.ID).Msg("User registered")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}
