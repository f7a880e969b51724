package model

// DashboardQuery selects the slice of entries the dashboard read model is
// built over. Cadence restricts which habits contribute to dailyCounts and
// the weekly summary; IncludeWeekly independently toggles whether
// weekly-cadence habits appear in the heatmap and category rollup at all.
type DashboardQuery struct {
	Month         string `json:"month"`
	Cadence       string `json:"cadence,omitempty"`
	IncludeWeekly bool   `json:"include_weekly"`
}

type HeatmapCell struct {
	DayKey    string `json:"day_key"`
	Count     int    `json:"count"`
	Intensity int    `json:"intensity"`
}

// WeeklySummary reports how many weekly-cadence habits met their weekly
// requirement in the reference week of the displayed month.
type WeeklySummary struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	Completed int    `json:"completed"`
	Goal      int    `json:"goal"`
}

type MonthlySummary struct {
	ActiveDays         int     `json:"active_days"`
	TotalEntries       int     `json:"total_entries"`
	CompletedHabitDays int     `json:"completed_habit_days"`
	CompletionRate     float64 `json:"completion_rate"`
}

type CategoryRollup struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	HabitCount int    `json:"habit_count"`
	EntryCount int    `json:"entry_count"`
	ActiveDays int    `json:"active_days"`
}

// MainDashboardReadModel is the composite month view derived from habits,
// categories, and entries.
type MainDashboardReadModel struct {
	Month          string           `json:"month"`
	DailyCounts    map[string]int   `json:"daily_counts"`
	Heatmap        []HeatmapCell    `json:"heatmap"`
	WeeklySummary  WeeklySummary    `json:"weekly_summary"`
	MonthlySummary MonthlySummary   `json:"monthly_summary"`
	CategoryRollup []CategoryRollup `json:"category_rollup"`
}
