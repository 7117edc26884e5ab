// Package scheduler runs fixed-rate periodic tasks on the caller's thread.
// Tasks never overlap: Step runs due tasks one after another in registration
// order, so state shared between tasks needs no locking.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type task struct {
	name   string
	period time.Duration
	next   time.Time
	fn     func()
	runs   uint64
}

// due allows a task to fire up to a quarter period early so a host loop
// ticking at the same nominal rate does not skip beats on jitter.
func (t *task) due(now time.Time) bool {
	return !now.Before(t.next.Add(-t.period / 4))
}

// Scheduler is a single-threaded cooperative scheduler.
type Scheduler struct {
	tasks  []*task
	logger *zap.Logger
}

func New(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{logger: logger}
}

// Every registers fn to run once per period. The first run happens on the
// first Step.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) {
	if period <= 0 {
		panic("scheduler: period must be positive")
	}
	s.tasks = append(s.tasks, &task{name: name, period: period, fn: fn})
}

// Step runs every task that is due at now and returns how many ran. A task
// that falls behind is rescheduled one period after now rather than run
// repeatedly to catch up.
func (s *Scheduler) Step(now time.Time) int {
	ran := 0
	for _, t := range s.tasks {
		if !t.due(now) {
			continue
		}
		s.run(t)
		ran++

		t.next = t.next.Add(t.period)
		if t.next.Before(now) {
			t.next = now.Add(t.period)
		}
	}
	return ran
}

// NextDue returns the earliest time any task becomes due.
func (s *Scheduler) NextDue() time.Time {
	var next time.Time
	for i, t := range s.tasks {
		at := t.next.Add(-t.period / 4)
		if i == 0 || at.Before(next) {
			next = at
		}
	}
	return next
}

// Runs reports how many times the named task has run.
func (s *Scheduler) Runs(name string) uint64 {
	for _, t := range s.tasks {
		if t.name == name {
			return t.runs
		}
	}
	return 0
}

// Run drives Step from a timer until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	if len(s.tasks) == 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info("scheduler started", zap.Int("tasks", len(s.tasks)))
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case now := <-timer.C:
			s.Step(now)
			timer.Reset(max(time.Until(s.NextDue()), 0))
		}
	}
}

// run executes one task, recovering panics so a single bad tick cannot stop
// the loop.
func (s *Scheduler) run(t *task) {
	defer func() {
		if err := recover(); err != nil {
			s.logger.Error("task panic recovered", zap.String("task", t.name), zap.Any("error", err))
		}
	}()
	t.runs++
	t.fn()
}
