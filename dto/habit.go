package dto

import (
	"main/model"
	"time"
)

type HabitResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	CategoryID    string               `json:"category_id,omitempty"`
	Type          model.HabitType      `json:"type"`
	Goal          model.HabitGoal      `json:"goal"`
	Archived      bool                 `json:"archived"`
	SubHabitIDs   []string             `json:"sub_habit_ids,omitempty"`
	BundleType    model.BundleType     `json:"bundle_type,omitempty"`
	BundleOptions []model.BundleOption `json:"bundle_options,omitempty"`
	FreezeCount   int                  `json:"freeze_count"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// Convert model.Habit to HabitResponse
func ToHabitResponse(habit *model.Habit) HabitResponse {
	return HabitResponse{
		ID:            habit.HabitID,
		Name:          habit.Name,
		CategoryID:    habit.CategoryID,
		Type:          habit.Type,
		Goal:          habit.Goal,
		Archived:      habit.Archived,
		SubHabitIDs:   habit.SubHabitIDs,
		BundleType:    habit.BundleType,
		BundleOptions: habit.BundleOptions,
		FreezeCount:   habit.FreezeCount,
		CreatedAt:     habit.CreatedAt,
		UpdatedAt:     habit.UpdatedAt,
	}
}

// Convert slice of model.Habit to slice of HabitResponse
func ToHabitResponses(habits []*model.Habit) []HabitResponse {
	responses := make([]HabitResponse, len(habits))
	for i, habit := range habits {
		responses[i] = ToHabitResponse(habit)
	}
	return responses
}
