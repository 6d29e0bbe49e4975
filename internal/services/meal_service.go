package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/mateusmlo/daily-diet-be/internal/models"
)

// MealUpdate carries a partial meal update. Nil fields keep their stored
// values.
type MealUpdate struct {
	Name        *string
	Description *string
	InDiet      *bool
}

// MealServiceProvider defines the interface for meal services. Every
// id-scoped operation takes the owning user's id and touches only meals
// belonging to that user.
type MealServiceProvider interface {
	Create(userID, name, description string, inDiet bool) (models.Meal, error)
	ListByUser(userID string) ([]models.Meal, error)
	GetByID(userID, mealID string) (models.Meal, error)
	Update(userID, mealID string, upd MealUpdate) error
	Delete(userID, mealID string) error
	Summary(userID string) (models.DietSummary, error)
}

// MealService provides business logic for meal management.
type MealService struct {
	db *sql.DB
}

// NewMealService creates a new MealService.
func NewMealService(db *sql.DB) *MealService {
	return &MealService{db: db}
}

// Create inserts a meal owned by userID. Ownership comes from the resolved
// session, never from client input.
func (s *MealService) Create(userID, name, description string, inDiet bool) (models.Meal, error) {
	now := time.Now().UTC()
	meal := models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		InDiet:      inDiet,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.Exec(
		"INSERT INTO meals(id, user_id, name, description, created_at, updated_at, in_diet) VALUES(?, ?, ?, ?, ?, ?, ?)",
		meal.ID, meal.UserID, meal.Name, meal.Description, meal.CreatedAt, meal.UpdatedAt, meal.InDiet,
	)
	if err != nil {
		return models.Meal{}, translateErr(err)
	}
	return meal, nil
}

// ListByUser returns every meal owned by userID in insertion order.
func (s *MealService) ListByUser(userID string) ([]models.Meal, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, name, description, created_at, updated_at, in_diet FROM meals WHERE user_id = ? ORDER BY rowid",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := []models.Meal{}
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Description, &m.CreatedAt, &m.UpdatedAt, &m.InDiet); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

// GetByID fetches a single meal filtered by id AND owner. A missing meal and
// a meal owned by someone else both come back as ErrNotFound.
func (s *MealService) GetByID(userID, mealID string) (models.Meal, error) {
	var m models.Meal
	row := s.db.QueryRow(
		"SELECT id, user_id, name, description, created_at, updated_at, in_diet FROM meals WHERE id = ? AND user_id = ?",
		mealID, userID,
	)
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Description, &m.CreatedAt, &m.UpdatedAt, &m.InDiet)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Meal{}, ErrNotFound
		}
		return models.Meal{}, err
	}
	return m, nil
}

// Update applies a partial update as a single conditional statement, so the
// ownership check and the mutation cannot race a concurrent delete. Omitted
// fields keep their stored values; updated_at is always refreshed.
func (s *MealService) Update(userID, mealID string, upd MealUpdate) error {
	res, err := s.db.Exec(
		`UPDATE meals
		 SET name = COALESCE(?, name),
		     description = COALESCE(?, description),
		     in_diet = COALESCE(?, in_diet),
		     updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		upd.Name, upd.Description, upd.InDiet, time.Now().UTC(), mealID, userID,
	)
	if err != nil {
		return translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes a meal, again keyed on id AND owner in one
// statement.
func (s *MealService) Delete(userID, mealID string) error {
	res, err := s.db.Exec("DELETE FROM meals WHERE id = ? AND user_id = ?", mealID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary recomputes the diet summary from the meals table. The denormalized
// counters on the users table are never consulted.
func (s *MealService) Summary(userID string) (models.DietSummary, error) {
	meals, err := s.ListByUser(userID)
	if err != nil {
		return models.DietSummary{}, err
	}
	return ComputeSummary(meals), nil
}
