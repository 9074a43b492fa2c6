package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type ledgerAuditor interface {
	Audit(ctx context.Context) error
}

// Scheduler periodically audits the ledger's owner index.
type Scheduler struct {
	auditor  ledgerAuditor
	interval time.Duration
	logger   logger.Logger
}

func New(
	auditor ledgerAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	start := time.Now()
	if err := s.auditor.Audit(ctx); err != nil {
		s.logger.Error("ledger audit failed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("ledger audit completed",
		logger.Duration("took", time.Since(start)),
	)
}
