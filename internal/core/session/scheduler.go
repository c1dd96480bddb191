package session

import (
	"sync"
	"time"
)

// Scheduler arms a repeating callback, one invocation per elapsed
// interval, until stopped. Starting an armed scheduler replaces the
// pending schedule.
type Scheduler interface {
	Start(interval time.Duration, fire func())
	Stop()
}

// tickerScheduler is the wall-clock Scheduler backed by time.Ticker.
type tickerScheduler struct {
	mu     sync.Mutex
	stopCh chan struct{}
}

// NewTickerScheduler returns a Scheduler driven by real time.
func NewTickerScheduler() Scheduler {
	return &tickerScheduler{}
}

func (scheduler *tickerScheduler) Start(interval time.Duration, fire func()) {
	if interval <= 0 {
		interval = time.Second
	}

	scheduler.mu.Lock()
	if scheduler.stopCh != nil {
		close(scheduler.stopCh)
	}
	stopCh := make(chan struct{})
	scheduler.stopCh = stopCh
	scheduler.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fire()
			}
		}
	}()
}

func (scheduler *tickerScheduler) Stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if scheduler.stopCh != nil {
		close(scheduler.stopCh)
		scheduler.stopCh = nil
	}
}
