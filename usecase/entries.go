package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/utils"
	"time"

	"github.com/google/uuid"
)

type EntriesService struct {
	entriesRepo *repository.EntriesRepo
	habitsRepo  *repository.HabitsRepo
}

func NewEntriesService(entriesRepo *repository.EntriesRepo, habitsRepo *repository.HabitsRepo) *EntriesService {
	return &EntriesService{entriesRepo: entriesRepo, habitsRepo: habitsRepo}
}

// CreateEntry logs habit activity. Bundle parents are rejected outright —
// their completion is derived from children and never logged directly.
func (svc *EntriesService) CreateEntry(ctx context.Context, entry *model.HabitEntry) error {
	if entry.UserID == "" {
		return errors.New("user ID is required")
	}
	if !utils.IsValidDayKey(entry.DayKey) {
		return errors.New("invalid day key, expected YYYY-MM-DD")
	}
	if entry.Value < 0 {
		return errors.New("entry value cannot be negative")
	}

	habit, err := svc.habitsRepo.GetHabitByID(ctx, entry.UserID, entry.HabitID)
	if err != nil {
		return err
	}
	if habit == nil {
		return errors.New("habit not found")
	}
	if habit.IsBundle() {
		return errors.New("bundle habits cannot be logged directly")
	}
	if habit.Archived {
		return errors.New("cannot log entries for an archived habit")
	}

	if entry.Source == "" {
		entry.Source = model.SourceManual
	}
	if err := validateEntrySource(entry.Source); err != nil {
		return err
	}

	if entry.EntryID == "" {
		entry.EntryID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := svc.entriesRepo.CreateEntry(ctx, entry); err != nil {
		return err
	}
	utils.TrackEntryLogged(string(entry.Source))
	return nil
}

// GetEntriesForRange returns live entry views in an inclusive day window.
func (svc *EntriesService) GetEntriesForRange(ctx context.Context, userID string, fromKey, toKey string) ([]model.EntryView, error) {
	if !utils.IsValidDayKey(fromKey) || !utils.IsValidDayKey(toKey) {
		return nil, errors.New("invalid day key, expected YYYY-MM-DD")
	}
	rawEntries, err := svc.entriesRepo.GetEntriesInRange(ctx, userID, fromKey, toKey)
	if err != nil {
		return nil, err
	}
	views := model.ToEntryViews(rawEntries)
	if views == nil {
		views = []model.EntryView{}
	}
	return views, nil
}

// DeleteEntry soft-deletes: the entry drops out of every aggregation but
// the document stays recoverable.
func (svc *EntriesService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	return svc.entriesRepo.SoftDeleteEntry(ctx, entryID, userID)
}

func validateEntrySource(source model.EntrySource) error {
	switch source {
	case model.SourceManual, model.SourceRoutine, model.SourceQuick, model.SourceImport, model.SourceTest:
		return nil
	default:
		return errors.New("invalid entry source")
	}
}
