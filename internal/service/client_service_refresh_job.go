package service

import (
	"context"
	"sync"
	"time"
)

type clientRefreshJob struct {
	notesService ClientNotesService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls
// notesService.Load on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(notesService ClientNotesService) ClientRefreshJob {
	return &clientRefreshJob{notesService: notesService}
}

// Start implements [ClientRefreshJob]. It stops any previously running job,
// then launches a background goroutine that reloads the snapshot every
// interval. If interval is zero or negative it defaults to 15 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.notesService.Load(jobCtx)
			}
		}
	}()
}

// Stop implements [ClientRefreshJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
