// Package sim implements the space garbage simulation: a cooperative task
// scheduler driving the spaceship, falling garbage, plasma shots, explosions,
// the starfield and the year clock, one bounded step per tick.
//
// Everything runs on a single goroutine. The obstacle registry and the
// pending collision set are shared by all tasks without locking; callers
// that drive a World from several goroutines must serialize Tick calls.
package sim

// Status is what a task reports after one step.
type Status int

const (
	// Continuing keeps the task scheduled for the next tick.
	Continuing Status = iota
	// Done removes the task from the scheduler.
	Done
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Task is an independently steppable unit of behavior. Step performs at most
// one visible unit of work (an erase/draw pair) and returns.
type Task interface {
	Step(w *World) Status
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(w *World) Status

// Step calls f(w).
func (f TaskFunc) Step(w *World) Status {
	return f(w)
}

// Scheduler is a round-robin cooperative scheduler.
//
// Each Tick steps the tasks registered before the tick began, in
// registration order. Tasks registered while a tick is running are queued
// behind them and first stepped on the following tick.
type Scheduler struct {
	tasks []Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make([]Task, 0, 64)}
}

// Register appends a task.
func (s *Scheduler) Register(t Task) {
	s.tasks = append(s.tasks, t)
}

// Len returns the number of live tasks, including ones queued mid-tick.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Tick steps every task of the current snapshot once and drops the ones
// that report Done. It returns the number of tasks stepped.
func (s *Scheduler) Tick(w *World) int {
	snapshot := s.tasks
	s.tasks = make([]Task, 0, len(snapshot)/4+4) // collects registrations made during this tick

	live := snapshot[:0]
	for _, t := range snapshot {
		if t.Step(w) == Continuing {
			live = append(live, t)
		}
	}
	// Clear the tail so finished tasks can be collected.
	for i := len(live); i < len(snapshot); i++ {
		snapshot[i] = nil
	}

	s.tasks = append(live, s.tasks...)
	return len(snapshot)
}
