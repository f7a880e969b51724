package model

// DayViewHabit is one habit's completion state for a single day.
type DayViewHabit struct {
	HabitID           string        `json:"habit_id"`
	Name              string        `json:"name"`
	Type              HabitType     `json:"type"`
	Frequency         HabitFrequency `json:"frequency"`
	Completed         bool          `json:"completed"`
	Value             float64       `json:"value"`
	Target            float64       `json:"target,omitempty"`
	Unit              string        `json:"unit,omitempty"`
	CompletedChildren int           `json:"completed_children_count,omitempty"`
	TotalChildren     int           `json:"total_children_count,omitempty"`
	ProgressPercent   int           `json:"progress_percent"`
}

// DayView is the per-day roll-up of all habits for a user.
type DayView struct {
	DayKey         string         `json:"day_key"`
	Habits         []DayViewHabit `json:"habits"`
	CompletedCount int            `json:"completed_count"`
	TotalCount     int            `json:"total_count"`
}
