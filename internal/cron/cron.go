package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/richei-group/richei-backend/internal/service"
)

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron     *cron.Cron
	services *service.Services
}

// NewScheduler creates a new scheduler
func NewScheduler(services *service.Services) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		services: services,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every hour - resolve funding rounds past their deadline
	s.cron.AddFunc("0 * * * *", func() {
		log.Println("[Cron] Running underfunding sweep...")
		s.resolveExpiredFunding()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

// resolveExpiredFunding applies each project's underfunding policy once its
// funding deadline has passed without the target being reached.
func (s *Scheduler) resolveExpiredFunding() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	resolved, err := s.services.Project.ResolveExpiredFunding(ctx)
	if err != nil {
		log.Printf("[Cron] Error resolving expired funding rounds: %v", err)
		return
	}
	if resolved > 0 {
		log.Printf("[Cron] Resolved %d expired funding round(s)", resolved)
	}
}

// ManualTrigger allows manual triggering of scheduled checks (for testing)
func (s *Scheduler) ManualTrigger(checkType string) {
	switch checkType {
	case "funding", "all":
		s.resolveExpiredFunding()
	}
}
