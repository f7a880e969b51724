package model

import "time"

type EntrySource string

const (
	SourceManual  EntrySource = "manual"
	SourceRoutine EntrySource = "routine"
	SourceQuick   EntrySource = "quick"
	SourceImport  EntrySource = "import"
	SourceTest    EntrySource = "test"
)

// FreezeNote marks auto-inserted streak-protection entries.
const FreezeNote = "freeze:auto"

// HabitEntry is the source of truth for habit activity. DayKey is the
// canonical YYYY-MM-DD aggregation boundary, resolved at write time.
// A set DeletedAt excludes the entry from every aggregation.
type HabitEntry struct {
	EntryID            string      `bson:"_id,omitempty" json:"id"`
	UserID             string      `bson:"user_id" json:"user_id"`
	HabitID            string      `bson:"habit_id" json:"habit_id" binding:"required"`
	DayKey             string      `bson:"day_key" json:"day_key" binding:"required"`
	Timestamp          time.Time   `bson:"timestamp" json:"timestamp"`
	Value              float64     `bson:"value,omitempty" json:"value,omitempty"`
	Source             EntrySource `bson:"source" json:"source"`
	Note               string      `bson:"note,omitempty" json:"note,omitempty"`
	DeletedAt          *time.Time  `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	ChoiceChildHabitID string      `bson:"choice_child_habit_id,omitempty" json:"choice_child_habit_id,omitempty"`
	BundleOptionID     string      `bson:"bundle_option_id,omitempty" json:"bundle_option_id,omitempty"`
}

func (e *HabitEntry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// EntryView is the read-side projection of HabitEntry handed to the
// aggregation layer: soft-deleted entries are already filtered out.
type EntryView struct {
	EntryID string      `json:"id"`
	HabitID string      `json:"habit_id"`
	DayKey  string      `json:"day_key"`
	Value   float64     `json:"value"`
	Source  EntrySource `json:"source"`
	Note    string      `json:"note,omitempty"`
}

// ToEntryViews projects entries, dropping soft-deleted ones.
func ToEntryViews(entries []*HabitEntry) []EntryView {
	var views []EntryView
	for _, e := range entries {
		if e.IsDeleted() {
			continue
		}
		views = append(views, EntryView{
			EntryID: e.EntryID,
			HabitID: e.HabitID,
			DayKey:  e.DayKey,
			Value:   e.Value,
			Source:  e.Source,
			Note:    e.Note,
		})
	}
	return views
}
