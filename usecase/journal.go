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

type JournalService struct {
	journalRepo *repository.JournalRepo
}

func NewJournalService(journalRepo *repository.JournalRepo) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

func (svc *JournalService) GetUserEntries(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	return svc.journalRepo.GetUserEntries(ctx, userID)
}

func (svc *JournalService) CreateEntry(ctx context.Context, entry *model.JournalEntry) error {
	if entry.UserID == "" {
		return errors.New("user ID is required")
	}
	if entry.Body == "" {
		return errors.New("journal body is required")
	}
	if entry.DayKey == "" {
		entry.DayKey = utils.FormatDayKey(time.Now())
	}
	if !utils.IsValidDayKey(entry.DayKey) {
		return errors.New("invalid day key, expected YYYY-MM-DD")
	}

	if entry.JournalID == "" {
		entry.JournalID = uuid.New().String()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	return svc.journalRepo.CreateEntry(ctx, entry)
}

func (svc *JournalService) UpdateEntry(ctx context.Context, journalID string, userID string, updates *model.JournalEntry) (*model.JournalEntry, error) {
	existing, err := svc.journalRepo.GetEntryByID(ctx, userID, journalID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("journal entry not found")
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Body != "" {
		existing.Body = updates.Body
	}
	if updates.Mood != "" {
		existing.Mood = updates.Mood
	}
	if updates.Tags != nil {
		existing.Tags = updates.Tags
	}

	if err := svc.journalRepo.UpdateEntry(ctx, journalID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *JournalService) DeleteEntry(ctx context.Context, journalID string, userID string) error {
	return svc.journalRepo.SoftDeleteEntry(ctx, journalID, userID)
}
