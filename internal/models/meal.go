package models

import "time"

// Meal is a single logged meal, owned by exactly one user.
type Meal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	InDiet      bool      `json:"in_diet"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DietSummary aggregates a user's adherence to their diet. BestSequence is
// the longest run of consecutive in-diet meals in chronological order.
type DietSummary struct {
	TotalMeals          int `json:"totalMeals"`
	TotalMealsInDiet    int `json:"totalMealsInDiet"`
	TotalMealsNotInDiet int `json:"totalMealsNotInDiet"`
	BestSequence        int `json:"bestSequence"`
}
