package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mateusmlo/daily-diet-be/internal/metrics"
	"github.com/mateusmlo/daily-diet-be/internal/services"
	"github.com/mateusmlo/daily-diet-be/internal/session"
	"github.com/rs/zerolog/log"
)

// MealHandler handles HTTP requests for meal management. All routes sit
// behind the session middleware, so the owning user is always present in the
// request context.
type MealHandler struct {
	service services.MealServiceProvider
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(service services.MealServiceProvider) *MealHandler {
	return &MealHandler{service: service}
}

// CreateMealPayload defines the structure for meal creation requests.
type CreateMealPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InDiet      *bool  `json:"in_diet"`
}

// Validate checks the payload against the meal constraints.
func (p CreateMealPayload) Validate() error {
	if l := len(p.Name); l < 3 || l > 255 {
		return fmt.Errorf("%w: name must be 3-255 characters", services.ErrValidation)
	}
	if len(p.Description) > 255 {
		return fmt.Errorf("%w: description must be at most 255 characters", services.ErrValidation)
	}
	if p.InDiet == nil {
		return fmt.Errorf("%w: in_diet is required", services.ErrValidation)
	}
	return nil
}

// UpdateMealPayload defines the structure for partial meal updates. Nil
// fields keep their stored values.
type UpdateMealPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	InDiet      *bool   `json:"in_diet"`
}

// Validate checks whichever fields are present.
func (p UpdateMealPayload) Validate() error {
	if p.Name != nil {
		if l := len(*p.Name); l < 3 || l > 255 {
			return fmt.Errorf("%w: name must be 3-255 characters", services.ErrValidation)
		}
	}
	if p.Description != nil && len(*p.Description) > 255 {
		return fmt.Errorf("%w: description must be at most 255 characters", services.ErrValidation)
	}
	return nil
}

// Create handles logging a new meal for the session's user.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Missing or invalid session", http.StatusUnauthorized)
		return
	}

	var payload CreateMealPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	meal, err := h.service.Create(user.ID, payload.Name, payload.Description, *payload.InDiet)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create meal")
		http.Error(w, "Failed to create meal", http.StatusInternalServerError)
		return
	}

	metrics.MealsLogged.Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(meal)
}

// GetAll handles listing every meal owned by the session's user.
func (h *MealHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Missing or invalid session", http.StatusUnauthorized)
		return
	}

	meals, err := h.service.ListByUser(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list meals")
		http.Error(w, "Failed to list meals", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meals)
}

// Get handles retrieving a single meal by id. A meal owned by someone else
// answers exactly like a missing one.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Missing or invalid session", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	meal, err := h.service.GetByID(user.ID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Meal not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("meal_id", id).Msg("Failed to get meal")
		http.Error(w, "Failed to get meal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meal)
}

// Update handles a partial meal update.
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Missing or invalid session", http.StatusUnauthorized)
		return
	}

	var payload UpdateMealPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	err := h.service.Update(user.ID, id, services.MealUpdate{
		Name:        payload.Name,
		Description: payload.Description,
		InDiet:      payload.InDiet,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Meal not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("meal_id", id).Msg("Failed to update meal")
		http.Error(w, "Failed to update meal", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles the permanent deletion of a meal.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Missing or invalid session", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(user.ID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Meal not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("meal_id", id).Msg("Failed to delete meal")
		http.Error(w, "Failed to delete meal", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary handles the diet-adherence summary for the session's user.
func (h *MealHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Missing or invalid session", http.StatusUnauthorized)
		return
	}

	summary, err := h.service.Summary(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to compute summary")
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
