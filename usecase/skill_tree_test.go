package usecase

import (
	"main/model"
	"testing"
	"time"
)

func TestBuildSkillTree(t *testing.T) {
	now := time.Date(2025, 1, 27, 12, 0, 0, 0, time.UTC)
	categories := []*model.Category{
		{CategoryID: "cat1", Name: "Health"},
		{CategoryID: "cat2", Name: "Career"},
	}
	habitsByID := map[string]*model.Habit{
		"h1": {HabitID: "h1", Name: "Run", CategoryID: "cat1"},
	}

	t.Run("goal with explicit category lands on it", func(t *testing.T) {
		goals := []*model.Goal{
			{
				GoalID:          "g1",
				Name:            "Run 100km",
				CategoryID:      "cat1",
				Type:            model.GoalCumulative,
				TargetValue:     100,
				AggregationMode: model.AggregateSum,
				LinkedHabitIDs:  []string{"h1"},
			},
		}
		resolved := map[string][]string{"g1": {"h1"}}
		entries := map[string][]model.EntryView{
			"h1": {entryView("h1", "2025-01-26", 40)},
		}

		tree := BuildSkillTree(categories, goals, habitsByID, resolved, entries, nil, now)
		if len(tree.Identities) != 1 {
			t.Fatalf("expected 1 identity, got %d", len(tree.Identities))
		}
		identity := tree.Identities[0]
		if identity.CategoryID != "cat1" {
			t.Errorf("identity = %s, want cat1", identity.CategoryID)
		}
		if len(identity.Skills) != 1 {
			t.Fatalf("expected 1 skill, got %d", len(identity.Skills))
		}
		skill := identity.Skills[0]
		if skill.Percent != 40 {
			t.Errorf("skill percent = %d, want 40", skill.Percent)
		}
		if len(skill.Habits) != 1 || skill.Habits[0].HabitID != "h1" {
			t.Errorf("skill habits = %+v, want one leaf for h1", skill.Habits)
		}
	})

	t.Run("category without goals is omitted", func(t *testing.T) {
		goals := []*model.Goal{
			{GoalID: "g1", Name: "Run 100km", CategoryID: "cat1", Type: model.GoalCumulative, TargetValue: 100},
		}

		tree := BuildSkillTree(categories, goals, habitsByID, map[string][]string{}, nil, nil, now)
		for _, identity := range tree.Identities {
			if identity.CategoryID == "cat2" {
				t.Error("cat2 has no goals and must not appear")
			}
		}
	})

	t.Run("goal without category inherits from its first linked habit", func(t *testing.T) {
		goals := []*model.Goal{
			{
				GoalID:         "g1",
				Name:           "Be consistent",
				Type:           model.GoalFrequency,
				TargetValue:    30,
				LinkedHabitIDs: []string{"h1"},
			},
		}
		resolved := map[string][]string{"g1": {"h1"}}

		tree := BuildSkillTree(categories, goals, habitsByID, resolved, nil, nil, now)
		if len(tree.Identities) != 1 || tree.Identities[0].CategoryID != "cat1" {
			t.Fatalf("goal should land on the linked habit's category, got %+v", tree.Identities)
		}
	})

	t.Run("goal with no category anywhere is dropped", func(t *testing.T) {
		goals := []*model.Goal{
			{GoalID: "g1", Name: "Orphan", Type: model.GoalOnetime},
		}

		tree := BuildSkillTree(categories, goals, habitsByID, map[string][]string{}, nil, nil, now)
		if len(tree.Identities) != 0 {
			t.Errorf("expected empty tree, got %+v", tree.Identities)
		}
	})
}
