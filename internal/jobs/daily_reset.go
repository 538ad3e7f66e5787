package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// QuestResetter defines the interface for re-opening resolved daily quests
type QuestResetter interface {
	ResetDailies(ctx context.Context) (int, error)
}

// DailyResetJob re-opens resolved daily quests on a fixed cadence so
// dailies recur without client involvement.
type DailyResetJob struct {
	resetter QuestResetter
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewDailyResetJob creates a new daily reset job
func NewDailyResetJob(resetter QuestResetter, interval time.Duration) *DailyResetJob {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &DailyResetJob{
		resetter: resetter,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background reset loop
func (j *DailyResetJob) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	slog.Info("daily reset job started", "interval", j.interval)
}

// Stop gracefully stops the job
func (j *DailyResetJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	slog.Info("daily reset job stopped")
}

func (j *DailyResetJob) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.runOnce()
		case <-j.stopCh:
			return
		}
	}
}

// runOnce performs a single reset pass. Failures are logged and retried
// on the next tick.
func (j *DailyResetJob) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := j.resetter.ResetDailies(ctx)
	if err != nil {
		slog.Error("daily quest reset failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("daily quests re-opened", "count", count)
	}
}
