package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/nonce"
)

// SweeperService periodically evicts expired entries from the nonce
// store so the live set stays bounded at roughly one entry per
// outstanding token. The audit ledger is deliberately never swept.
type SweeperService struct {
	Nonces   nonce.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSweeperService creates a sweeper with the given interval.
// If interval is 0 or negative, defaults to 1 minute.
func NewSweeperService(nonces nonce.Store, logger *slog.Logger, interval time.Duration) *SweeperService {
	if interval <= 0 {
		interval = time.Minute
	}

	return &SweeperService{
		Nonces:   nonces,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to
// gracefully shut the worker down.
func (s *SweeperService) Start() {
	go s.run()
	s.Logger.Info("nonce sweeper started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress sweep.
func (s *SweeperService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("nonce sweeper stopped")
}

func (s *SweeperService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *SweeperService) sweep() {
	removed, err := s.Nonces.Sweep(context.Background(), time.Now())
	if err != nil {
		s.Logger.Error("nonce sweep failed", "error", err)
		return
	}
	if removed > 0 {
		s.Logger.Debug("nonce sweep completed", "removed", removed)
	}
}
