package dto

import (
	"main/model"
	"time"
)

type GoalResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	CategoryID        string                `json:"category_id,omitempty"`
	Type              model.GoalType        `json:"type"`
	TargetValue       float64               `json:"target_value,omitempty"`
	Unit              string                `json:"unit,omitempty"`
	LinkedHabitIDs    []string              `json:"linked_habit_ids,omitempty"`
	AggregationMode   model.AggregationMode `json:"aggregation_mode,omitempty"`
	Deadline          *time.Time            `json:"deadline,omitempty"`
	CompletedAt       *time.Time            `json:"completed_at,omitempty"`
	DaysUntilDeadline int                   `json:"days_until_deadline,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type GoalWithProgressResponse struct {
	Goal     GoalResponse        `json:"goal"`
	Progress *model.GoalProgress `json:"progress"`
}

// Convert model.Goal to GoalResponse
func ToGoalResponse(goal *model.Goal) GoalResponse {
	response := GoalResponse{
		ID:              goal.GoalID,
		Name:            goal.Name,
		CategoryID:      goal.CategoryID,
		Type:            goal.Type,
		TargetValue:     goal.TargetValue,
		Unit:            goal.Unit,
		LinkedHabitIDs:  goal.LinkedHabitIDs,
		AggregationMode: goal.AggregationMode,
		Deadline:        goal.Deadline,
		CompletedAt:     goal.CompletedAt,
		CreatedAt:       goal.CreatedAt,
		UpdatedAt:       goal.UpdatedAt,
	}

	if goal.Deadline != nil && !goal.IsCompleted() {
		days := int(time.Until(*goal.Deadline).Hours() / 24)
		if days > 0 {
			response.DaysUntilDeadline = days
		}
	}

	return response
}

// Convert slice of model.Goal to slice of GoalResponse
func ToGoalResponses(goals []*model.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal)
	}
	return responses
}

// Convert batch progress results to response objects
func ToGoalWithProgressResponses(results []model.GoalWithProgress) []GoalWithProgressResponse {
	responses := make([]GoalWithProgressResponse, len(results))
	for i, result := range results {
		responses[i] = GoalWithProgressResponse{
			Goal:     ToGoalResponse(result.Goal),
			Progress: result.Progress,
		}
	}
	return responses
}
