package model

// UserStats summarizes a user's tracking footprint plus a system health
// snapshot for the ops view.
type UserStats struct {
	HabitStats struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Archived int `json:"archived"`
		Bundles  int `json:"bundles"`
	} `json:"habit_stats"`
	EntryStats struct {
		Last30Days int            `json:"last_30_days"`
		ActiveDays int            `json:"active_days"`
		BySource   map[string]int `json:"by_source"`
	} `json:"entry_stats"`
	GoalStats struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
	} `json:"goal_stats"`
	RoutineStats struct {
		Total int `json:"total"`
	} `json:"routine_stats"`
	SystemStats struct {
		CPUUsagePercent float64 `json:"cpu_usage_percent"`
	} `json:"system_stats"`
}
