package services

import (
	"sort"

	"github.com/mateusmlo/daily-diet-be/internal/models"
)

// ComputeSummary derives the diet summary from a user's meals. Meals are
// sorted by creation time with a stable sort, so meals sharing a timestamp
// keep their relative order, then scanned once to find the longest run of
// consecutive in-diet meals.
func ComputeSummary(meals []models.Meal) models.DietSummary {
	sorted := make([]models.Meal, len(meals))
	copy(sorted, meals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var summary models.DietSummary
	streak := 0
	for _, m := range sorted {
		summary.TotalMeals++
		if m.InDiet {
			summary.TotalMealsInDiet++
			streak++
			if streak > summary.BestSequence {
				summary.BestSequence = streak
			}
		} else {
			summary.TotalMealsNotInDiet++
			streak = 0
		}
	}
	return summary
}
