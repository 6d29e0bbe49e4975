package services

import (
	"testing"
	"time"

	"github.com/mateusmlo/daily-diet-be/internal/models"
	"github.com/stretchr/testify/assert"
)

func mealsFromFlags(base time.Time, flags ...bool) []models.Meal {
	meals := make([]models.Meal, len(flags))
	for i, f := range flags {
		meals[i] = models.Meal{
			Name:      "meal",
			InDiet:    f,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return meals
}

func TestComputeSummary(t *testing.T) {
	base := time.Date(2023, 7, 14, 8, 0, 0, 0, time.UTC)

	t.Run("empty meal set", func(t *testing.T) {
		assert.Equal(t, models.DietSummary{}, ComputeSummary(nil))
	})

	t.Run("streak resets on an out-of-diet meal", func(t *testing.T) {
		meals := mealsFromFlags(base, true, true, false, true, true, true)
		got := ComputeSummary(meals)

		assert.Equal(t, 6, got.TotalMeals)
		assert.Equal(t, 5, got.TotalMealsInDiet)
		assert.Equal(t, 1, got.TotalMealsNotInDiet)
		assert.Equal(t, 3, got.BestSequence)
	})

	t.Run("all meals in diet", func(t *testing.T) {
		meals := mealsFromFlags(base, true, true, true, true)
		got := ComputeSummary(meals)

		assert.Equal(t, got.TotalMeals, got.BestSequence)
	})

	t.Run("in and not-in counts always add up", func(t *testing.T) {
		meals := mealsFromFlags(base, false, true, false, true, true, false, false)
		got := ComputeSummary(meals)

		assert.Equal(t, got.TotalMeals, got.TotalMealsInDiet+got.TotalMealsNotInDiet)
		assert.LessOrEqual(t, got.BestSequence, got.TotalMeals)
	})

	t.Run("sorts by creation time before scanning", func(t *testing.T) {
		// Logged out of order: the streak must follow chronological order.
		meals := []models.Meal{
			{InDiet: false, CreatedAt: base.Add(2 * time.Hour)},
			{InDiet: true, CreatedAt: base},
			{InDiet: true, CreatedAt: base.Add(time.Hour)},
			{InDiet: true, CreatedAt: base.Add(3 * time.Hour)},
		}
		got := ComputeSummary(meals)

		assert.Equal(t, 2, got.BestSequence)
	})

	t.Run("tied timestamps keep insertion order", func(t *testing.T) {
		// Two meals share a timestamp; the stable sort keeps the out-of-diet
		// meal between the two in-diet runs.
		meals := []models.Meal{
			{InDiet: true, CreatedAt: base},
			{InDiet: false, CreatedAt: base.Add(time.Hour)},
			{InDiet: true, CreatedAt: base.Add(time.Hour)},
			{InDiet: true, CreatedAt: base.Add(2 * time.Hour)},
		}
		got := ComputeSummary(meals)

		assert.Equal(t, 2, got.BestSequence)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		meals := []models.Meal{
			{InDiet: true, CreatedAt: base.Add(time.Hour)},
			{InDiet: false, CreatedAt: base},
		}
		ComputeSummary(meals)

		assert.True(t, meals[0].CreatedAt.After(meals[1].CreatedAt))
	})
}
