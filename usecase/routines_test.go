package usecase

import (
	"main/model"
	"testing"
	"time"
)

func mustParseTime(t *testing.T, dayKey string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dayKey)
	if err != nil {
		t.Fatalf("bad day key %s: %v", dayKey, err)
	}
	return parsed
}

func routine(id, name string) *model.Routine {
	return &model.Routine{RoutineID: id, UserID: "u1", Name: name}
}

func TestOrderRoutinesByWeekdayMirroring(t *testing.T) {
	routines := []*model.Routine{
		routine("r1", "Morning"),
		routine("r2", "Lunch"),
		routine("r3", "Evening"),
	}

	t.Run("routines used same weekday last week come first", func(t *testing.T) {
		// Today is Monday 2025-01-27; last Monday is 2025-01-20.
		logs := []*model.RoutineLog{
			{LogID: "l1", RoutineID: "r3", DayKey: "2025-01-20"},
		}

		ordered := OrderRoutinesByWeekdayMirroring(routines, logs, "2025-01-27")
		if ordered[0].RoutineID != "r3" {
			t.Errorf("first routine = %s, want r3", ordered[0].RoutineID)
		}
		if ordered[1].RoutineID != "r1" || ordered[2].RoutineID != "r2" {
			t.Errorf("relative order of the rest must be preserved, got %s, %s",
				ordered[1].RoutineID, ordered[2].RoutineID)
		}
	})

	t.Run("logs from other days do not reorder", func(t *testing.T) {
		logs := []*model.RoutineLog{
			{LogID: "l1", RoutineID: "r3", DayKey: "2025-01-21"},
		}

		ordered := OrderRoutinesByWeekdayMirroring(routines, logs, "2025-01-27")
		for i, r := range routines {
			if ordered[i].RoutineID != r.RoutineID {
				t.Errorf("order changed at %d: got %s, want %s", i, ordered[i].RoutineID, r.RoutineID)
			}
		}
	})

	t.Run("no logs returns input order", func(t *testing.T) {
		ordered := OrderRoutinesByWeekdayMirroring(routines, nil, "2025-01-27")
		for i, r := range routines {
			if ordered[i].RoutineID != r.RoutineID {
				t.Errorf("order changed at %d", i)
			}
		}
	})

	t.Run("multiple mirrored routines keep their relative order", func(t *testing.T) {
		logs := []*model.RoutineLog{
			{LogID: "l1", RoutineID: "r2", DayKey: "2025-01-20"},
			{LogID: "l2", RoutineID: "r3", DayKey: "2025-01-20"},
		}

		ordered := OrderRoutinesByWeekdayMirroring(routines, logs, "2025-01-27")
		if ordered[0].RoutineID != "r2" || ordered[1].RoutineID != "r3" || ordered[2].RoutineID != "r1" {
			t.Errorf("got order %s, %s, %s; want r2, r3, r1",
				ordered[0].RoutineID, ordered[1].RoutineID, ordered[2].RoutineID)
		}
	})
}
