// Package scheduler arms reminder and start alarms for a user's upcoming
// published wellness sessions and feeds a 1 Hz countdown to the presentation
// layer. It only ever reads the session list, never writes it.
package scheduler

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"wellnesshub/pkg/session"
)

const (
	reminderLead  = 5 * time.Minute
	startAlertTTL = 5 * time.Second
	tickInterval  = time.Second

	tagReminder   = "reminder"
	tagStart      = "start"
	tagTick       = "tick"
	tagStartClear = "start-clear"
)

type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertSuccess AlertType = "success"
	AlertWarning AlertType = "warning"
)

type Alert struct {
	Message string    `json:"message"`
	Type    AlertType `json:"type"`
}

type Countdown struct {
	Title   string `json:"title"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
}

// Sink receives alert and countdown updates. Implementations belong to the
// host (UI, SSE stream, test double); the scheduler pushes pure data.
type Sink interface {
	ShowAlert(a Alert)
	ClearAlert()
	UpdateCountdown(c Countdown)
	ClearCountdown()
}

type Scheduler struct {
	clock  Clock
	timers TimerPort
	sink   Sink
	alarm  AlarmPlayer
	logger *slog.Logger

	mu     sync.Mutex
	next   *session.Session
	closed bool
}

func New(clock Clock, timers TimerPort, sink Sink, alarm AlarmPlayer, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		clock:  clock,
		timers: timers,
		sink:   sink,
		alarm:  alarm,
		logger: logger,
	}
}

// Recompute replaces the current notification plan with one derived from the
// given owned-session list. Any timers armed by a previous plan are canceled
// first.
func (s *Scheduler) Recompute(sessions []*session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.timers.CancelAll()

	now := s.clock.Now()
	next := nextUpcoming(sessions, now)
	if next == nil {
		s.next = nil
		s.sink.ClearCountdown()
		s.sink.ShowAlert(Alert{
			Message: "No upcoming wellness sessions scheduled.",
			Type:    AlertInfo,
		})
		return
	}
	s.next = next

	// re-read the clock: the list may be stale by the time we got here
	timeToStart := next.ScheduledAt.Sub(s.clock.Now())
	timeToReminder := timeToStart - reminderLead

	title := next.Title

	if timeToReminder > 0 {
		s.timers.ArmOnce(tagReminder, timeToReminder, func() { s.fireReminder(title) })
	}

	if timeToStart <= 0 {
		s.sink.ClearCountdown()
		s.sink.ShowAlert(Alert{
			Message: fmt.Sprintf("Session %q has already started or passed.", title),
			Type:    AlertWarning,
		})
		return
	}

	s.timers.ArmOnce(tagStart, timeToStart, func() { s.fireStart(title) })
	s.timers.ArmRepeating(tagTick, tickInterval, s.tick)
	s.logger.Info("notification plan armed",
		"session", title,
		"startsIn", timeToStart.Round(time.Second).String())
}

// Dismiss clears the visible alert immediately.
func (s *Scheduler) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink.ClearAlert()
}

// RetryAlarm retries playback after the environment refused it.
func (s *Scheduler) RetryAlarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playAlarmLocked()
}

// Close cancels every outstanding timer. The scheduler is unusable afterwards.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.next = nil
	s.timers.CancelAll()
}

func (s *Scheduler) fireReminder(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.sink.ShowAlert(Alert{
		Message: fmt.Sprintf("Reminder: your session %q starts in 5 minutes!", title),
		Type:    AlertInfo,
	})
	s.playAlarmLocked()
}

func (s *Scheduler) fireStart(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.timers.Cancel(tagTick)
	s.sink.ClearCountdown()
	s.sink.ShowAlert(Alert{
		Message: fmt.Sprintf("Your session %q is starting NOW!", title),
		Type:    AlertSuccess,
	})
	s.playAlarmLocked()
	s.timers.ArmOnce(tagStartClear, startAlertTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.sink.ClearAlert()
	})
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.next == nil || s.next.ScheduledAt == nil {
		return
	}

	remaining := s.next.ScheduledAt.Sub(s.clock.Now())
	if remaining <= 0 {
		s.timers.Cancel(tagTick)
		s.sink.ClearCountdown()
		return
	}

	total := int(remaining / time.Second)
	s.sink.UpdateCountdown(Countdown{
		Title:   s.next.Title,
		Minutes: total / 60,
		Seconds: total % 60,
	})
}

func (s *Scheduler) playAlarmLocked() {
	if err := s.alarm.Play(); err != nil {
		s.logger.Error("alarm playback failed", "error", err)
		s.sink.ShowAlert(Alert{
			Message: "Alarm sound could not be played. Retry to enable it.",
			Type:    AlertWarning,
		})
	}
}

// nextUpcoming picks the published session with the earliest future start.
// Ties on the start time fall back to the smaller id so the choice is
// deterministic.
func nextUpcoming(sessions []*session.Session, now time.Time) *session.Session {
	var next *session.Session
	for _, s := range sessions {
		if s.Status != session.StatusPublished || s.ScheduledAt == nil {
			continue
		}
		if !s.ScheduledAt.After(now) {
			continue
		}
		if next == nil || sortsBefore(s, next) {
			next = s
		}
	}
	return next
}

func sortsBefore(a, b *session.Session) bool {
	if !a.ScheduledAt.Equal(*b.ScheduledAt) {
		return a.ScheduledAt.Before(*b.ScheduledAt)
	}
	return a.ID < b.ID
}
