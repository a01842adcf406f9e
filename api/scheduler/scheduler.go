// Package scheduler runs the site's periodic background jobs: sweeping
// abandoned booking drafts out of memory and probing the rental API so an
// outage shows up in the logs before a visitor hits it.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/swiftwheels/swiftwheels-web/booking"
	"github.com/swiftwheels/swiftwheels-web/upstream"
)

// probeTimeout bounds a single upstream reachability check.
const probeTimeout = 10 * time.Second

// Scheduler handles periodic background jobs for the site
type Scheduler struct {
	cron    *cron.Cron
	Drafts  *booking.Store
	Catalog upstream.CatalogService
}

// New creates a new scheduler instance
func New(drafts *booking.Store, catalog upstream.CatalogService) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		Drafts:  drafts,
		Catalog: catalog,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Expired drafts hold proof-of-payment uploads in memory, so sweep often
	_, err := s.cron.AddFunc("@every 5m", s.sweepDrafts)
	if err != nil {
		zap.S().Errorw("failed to register draft sweep job", "error", err)
	}

	_, err = s.cron.AddFunc("@every 15m", s.probeUpstream)
	if err != nil {
		zap.S().Errorw("failed to register upstream probe job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("background scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("background scheduler stopped")
}

// sweepDrafts drops booking drafts that have sat untouched past their TTL.
func (s *Scheduler) sweepDrafts() {
	removed := s.Drafts.Sweep()
	if removed > 0 {
		zap.S().Infow("swept expired booking drafts",
			"removed", removed,
			"remaining", s.Drafts.Len(),
		)
	}
}

// probeUpstream fetches the fleet so a rental-API outage is logged as soon
// as it starts rather than when the next visitor lands on the site.
func (s *Scheduler) probeUpstream() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	fleet, err := s.Catalog.Fleet(ctx)
	if err != nil {
		zap.S().Errorw("rental API is unreachable", "error", err)
		return
	}
	zap.S().Debugw("rental API probe ok", "vehicles", len(fleet))
}
