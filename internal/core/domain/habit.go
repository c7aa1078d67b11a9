package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrHabitNotFound     = errors.New("habit not found")
	ErrSelectionTooLarge = fmt.Errorf("%w: you can select up to %d habits only", ErrValidation, MaxSelectedHabits)
	ErrInvalidHabit      = fmt.Errorf("%w: invalid habit definition", ErrValidation)
	ErrUnknownCategory   = fmt.Errorf("%w: unknown category", ErrValidation)
)

const (
	CategoryWellness     = "wellness"
	CategoryFitness      = "fitness"
	CategoryMindfulness  = "mindfulness"
	CategoryLearning     = "learning"
	CategorySocial       = "social"
	CategoryProductivity = "productivity"

	MaxSelectedHabits = 5
	MaxNameLen        = 100
)

// Habit is a catalog entry. Catalog entries never change at runtime.
type Habit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

func IsValidCategory(category string) bool {
	switch category {
	case CategoryWellness, CategoryFitness, CategoryMindfulness,
		CategoryLearning, CategorySocial, CategoryProductivity:
		return true
	default:
		return false
	}
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidHabit)
	}

	name := strings.TrimSpace(h.Name)
	if name == "" {
		return fmt.Errorf("%w: habit %q has an empty name", ErrInvalidHabit, h.ID)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: habit %q name is too long (max %d chars)", ErrInvalidHabit, h.ID, MaxNameLen)
	}

	if !IsValidCategory(h.Category) {
		return fmt.Errorf("%w: habit %q has unknown category %q", ErrInvalidHabit, h.ID, h.Category)
	}

	return nil
}

// IDs returns the habit IDs in order.
func IDs(habits []Habit) []string {
	ids := make([]string, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}
	return ids
}
