package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/owlpost/lumos/internal/service"
)

// DailyRefresher keeps the daily feature document warm. Selection is pinned
// per calendar date, so the worker's only effect is to take the first-caller
// cost off a real request shortly after the UTC day rolls over. Requests
// never depend on it; a cold date is generated inline by the first read.
type DailyRefresher struct {
	dailyService *service.DailyService
	interval     time.Duration
	stopCh       chan struct{}
	wg           sync.WaitGroup
	running      bool
	mu           sync.Mutex
}

// NewDailyRefresher creates a new daily refresh job
func NewDailyRefresher(dailyService *service.DailyService, interval time.Duration) *DailyRefresher {
	if interval == 0 {
		interval = 15 * time.Minute
	}
	return &DailyRefresher{
		dailyService: dailyService,
		interval:     interval,
		stopCh:       make(chan struct{}),
	}
}

// Start begins the daily refresh job
func (p *DailyRefresher) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run()
	slog.Info("daily refresher started", slog.Duration("interval", p.interval))
}

// Stop gracefully stops the daily refresh job
func (p *DailyRefresher) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	close(p.stopCh)
	p.wg.Wait()
	slog.Info("daily refresher stopped")
}

// run is the main loop
func (p *DailyRefresher) run() {
	defer p.wg.Done()

	p.ensureToday()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.ensureToday()
		case <-p.stopCh:
			return
		}
	}
}

// ensureToday generates and pins today's feature if no document exists yet.
func (p *DailyRefresher) ensureToday() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := p.dailyService.Feature(ctx); err != nil {
		slog.Error("daily refresh failed",
			slog.String("date", p.dailyService.Today()),
			slog.Any("error", err),
		)
	}
}

// RunOnce runs the refresh once (for testing or manual trigger)
func (p *DailyRefresher) RunOnce(ctx context.Context) error {
	_, err := p.dailyService.Feature(ctx)
	return err
}

// IsRunning returns whether the refresher is running
func (p *DailyRefresher) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
