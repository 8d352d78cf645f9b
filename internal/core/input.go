package core

// Action represents a semantic control action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W, K - thrust toward the top
	ActionDown         // Down arrow, S, J - thrust toward the bottom
	ActionLeft         // Left arrow, A, H - thrust left
	ActionRight        // Right arrow, D, L - thrust right
	ActionFire         // Space - fire the plasma gun
	ActionQuit         // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Impulse is the control intent for one tick: a direction per axis in
// {-1, 0, 1} and whether fire was requested.
type Impulse struct {
	Row  int
	Col  int
	Fire bool
}

// ImpulseSource provides the control impulse once per tick.
// Poll must not block.
type ImpulseSource interface {
	Poll() Impulse
}

// InputQueue collects actions between ticks and folds them into one Impulse.
// It is not safe for concurrent use; the platform pushes and the simulation
// polls from the same goroutine.
type InputQueue struct {
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{pending: make([]Action, 0, 8)}
}

// Push records an action for the next poll.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Len returns the number of actions waiting.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Poll drains every pending action. The last direction seen on each axis
// wins, and Fire is set if any fire action was seen.
func (q *InputQueue) Poll() Impulse {
	var in Impulse
	for _, a := range q.pending {
		switch a {
		case ActionUp:
			in.Row = -1
		case ActionDown:
			in.Row = 1
		case ActionLeft:
			in.Col = -1
		case ActionRight:
			in.Col = 1
		case ActionFire:
			in.Fire = true
		}
	}
	q.pending = q.pending[:0]
	return in
}

// Clear drops pending actions without producing an impulse.
func (q *InputQueue) Clear() {
	q.pending = q.pending[:0]
}

// ImpulseFunc adapts a function to ImpulseSource.
type ImpulseFunc func() Impulse

// Poll calls f.
func (f ImpulseFunc) Poll() Impulse {
	return f()
}
