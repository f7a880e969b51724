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

type WellbeingService struct {
	wellbeingRepo *repository.WellbeingRepo
}

func NewWellbeingService(wellbeingRepo *repository.WellbeingRepo) *WellbeingService {
	return &WellbeingService{wellbeingRepo: wellbeingRepo}
}

// RecordCheckin stores the day's check-in; a second check-in on the same
// day replaces the first.
func (svc *WellbeingService) RecordCheckin(ctx context.Context, checkin *model.WellbeingCheckin) error {
	if checkin.UserID == "" {
		return errors.New("user ID is required")
	}
	if checkin.DayKey == "" {
		checkin.DayKey = utils.FormatDayKey(time.Now())
	}
	if !utils.IsValidDayKey(checkin.DayKey) {
		return errors.New("invalid day key, expected YYYY-MM-DD")
	}
	if checkin.Mood < 1 || checkin.Mood > 10 {
		return errors.New("mood must be between 1 and 10")
	}
	if checkin.Energy < 0 || checkin.Energy > 10 {
		return errors.New("energy must be between 0 and 10")
	}
	if checkin.Stress < 0 || checkin.Stress > 10 {
		return errors.New("stress must be between 0 and 10")
	}

	if checkin.CheckinID == "" {
		checkin.CheckinID = uuid.New().String()
	}
	checkin.CreatedAt = time.Now()

	return svc.wellbeingRepo.UpsertCheckin(ctx, checkin)
}

func (svc *WellbeingService) GetCheckins(ctx context.Context, userID string, days int) ([]*model.WellbeingCheckin, error) {
	if days <= 0 {
		days = 30
	}
	keys := utils.LastNDayKeys(time.Now(), days)
	return svc.wellbeingRepo.GetCheckinsInRange(ctx, userID, keys[0], keys[len(keys)-1])
}

// GetSummary averages check-in scores over the trailing window.
func (svc *WellbeingService) GetSummary(ctx context.Context, userID string, days int) (*model.WellbeingSummary, error) {
	if days <= 0 {
		days = 30
	}

	checkins, err := svc.GetCheckins(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	summary := &model.WellbeingSummary{
		Days:         days,
		CheckinCount: len(checkins),
	}
	if len(checkins) == 0 {
		return summary, nil
	}

	var moodSum, energySum, stressSum float64
	energyCount, stressCount := 0, 0
	for _, checkin := range checkins {
		moodSum += float64(checkin.Mood)
		if checkin.Energy > 0 {
			energySum += float64(checkin.Energy)
			energyCount++
		}
		if checkin.Stress > 0 {
			stressSum += float64(checkin.Stress)
			stressCount++
		}
	}
	summary.AvgMood = moodSum / float64(len(checkins))
	if energyCount > 0 {
		summary.AvgEnergy = energySum / float64(energyCount)
	}
	if stressCount > 0 {
		summary.AvgStress = stressSum / float64(stressCount)
	}
	return summary, nil
}
