package scheduler

import (
	"sync"
	"time"
)

// TimerPort abstracts one-shot and repeating delayed callbacks. Arming a tag
// that is already armed replaces the previous timer, so at most one timer per
// tag is ever outstanding.
type TimerPort interface {
	ArmOnce(tag string, delay time.Duration, fn func())
	ArmRepeating(tag string, interval time.Duration, fn func())
	Cancel(tag string)
	CancelAll()
}

type StdTimers struct {
	mu     sync.Mutex
	cancel map[string]func()
}

func NewStdTimers() *StdTimers {
	return &StdTimers{cancel: make(map[string]func())}
}

func (t *StdTimers) ArmOnce(tag string, delay time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked(tag)

	timer := time.AfterFunc(delay, fn)
	t.cancel[tag] = func() { timer.Stop() }
}

func (t *StdTimers) ArmRepeating(tag string, interval time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked(tag)

	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	t.cancel[tag] = func() { once.Do(func() { close(done) }) }
}

func (t *StdTimers) Cancel(tag string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked(tag)
}

func (t *StdTimers) CancelAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for tag, cancel := range t.cancel {
		cancel()
		delete(t.cancel, tag)
	}
}

func (t *StdTimers) cancelLocked(tag string) {
	if cancel, ok := t.cancel[tag]; ok {
		cancel()
		delete(t.cancel, tag)
	}
}
