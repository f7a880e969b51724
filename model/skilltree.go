package model

// HabitLeaf is a linked habit projected under a skill node. AtRisk mirrors
// the owning goal's inactivity warning.
type HabitLeaf struct {
	HabitID      string `json:"habit_id"`
	Name         string `json:"name"`
	ProgressText string `json:"progress_text"`
	Percent      int    `json:"percent"`
	AtRisk       bool   `json:"at_risk"`
}

// SkillNode is a goal projected into the skill tree.
type SkillNode struct {
	GoalID       string      `json:"goal_id"`
	Name         string      `json:"name"`
	Percent      int         `json:"percent"`
	ProgressText string      `json:"progress_text"`
	AtRisk       bool        `json:"at_risk"`
	Completed    bool        `json:"completed"`
	Habits       []HabitLeaf `json:"habits"`
}

// IdentityNode is a category with at least one goal attached.
type IdentityNode struct {
	CategoryID string      `json:"category_id"`
	Name       string      `json:"name"`
	Color      string      `json:"color,omitempty"`
	Icon       string      `json:"icon,omitempty"`
	Skills     []SkillNode `json:"skills"`
}

type SkillTree struct {
	Identities []IdentityNode `json:"identities"`
}
