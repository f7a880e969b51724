package services

import (
	"context"
	"log"
	"main/repository"
	"main/usecase"
	"time"

	"github.com/robfig/cron/v3"
)

// FreezeScheduler runs the auto-freeze sweep once per day-boundary
// crossing, shortly after midnight, for every user with habits.
type FreezeScheduler struct {
	cron       *cron.Cron
	freezeSvc  *usecase.FreezeService
	habitsRepo *repository.HabitsRepo
}

func NewFreezeScheduler(freezeSvc *usecase.FreezeService, habitsRepo *repository.HabitsRepo) *FreezeScheduler {
	return &FreezeScheduler{
		cron:       cron.New(),
		freezeSvc:  freezeSvc,
		habitsRepo: habitsRepo,
	}
}

// Start schedules the daily sweep. The schedule is overridable for
// operational tuning via FREEZE_CRON_SPEC.
func (s *FreezeScheduler) Start(spec string) error {
	if spec == "" {
		spec = "5 0 * * *" // 00:05 every day
	}
	_, err := s.cron.AddFunc(spec, s.runSweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Freeze scheduler started with spec %q", spec)
	return nil
}

func (s *FreezeScheduler) Stop() {
	s.cron.Stop()
}

func (s *FreezeScheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	userIDs, err := s.habitsRepo.DistinctUserIDs(ctx)
	if err != nil {
		log.Printf("Freeze sweep: failed to list users: %v", err)
		return
	}

	now := time.Now()
	total := 0
	for _, userID := range userIDs {
		consumed, err := s.freezeSvc.ProcessAutoFreezes(ctx, userID, now)
		if err != nil {
			log.Printf("Freeze sweep failed for user %s: %v", userID, err)
			continue
		}
		total += consumed
	}
	log.Printf("Freeze sweep complete: %d freezes consumed across %d users", total, len(userIDs))
}
