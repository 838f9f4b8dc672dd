package engine

// State is one of the five game modes.
type State int

const (
	StateTitle State = iota
	StateInGame
	StatePaused
	StateGameOver
	StateHiScores
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateInGame:
		return "in_game"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateHiScores:
		return "hi_scores"
	default:
		return "unknown"
	}
}

// Simulating reports whether entities update in this state.
func (s State) Simulating() bool {
	return s == StateInGame || s == StateGameOver
}

// StateMachine holds the current and previous state and runs enter
// callbacks. Any state may follow any other.
type StateMachine struct {
	current  State
	previous State
	hasPrev  bool
	onEnter  map[State][]func(from State)
}

// NewStateMachine creates a machine in the initial state.
func NewStateMachine(initial State) *StateMachine {
	return &StateMachine{
		current: initial,
		onEnter: make(map[State][]func(from State)),
	}
}

// Set switches state and runs the new state's callbacks.
// Setting the current state is a no-op. It reports whether a change happened.
func (m *StateMachine) Set(s State) bool {
	if s == m.current {
		return false
	}
	from := m.current
	m.previous, m.hasPrev = from, true
	m.current = s
	for _, fn := range m.onEnter[s] {
		fn(from)
	}
	return true
}

// Current returns the active state.
func (m *StateMachine) Current() State {
	return m.current
}

// Previous returns the state before the last change, if any.
func (m *StateMachine) Previous() (State, bool) {
	return m.previous, m.hasPrev
}

// OnEnter registers a callback run each time s becomes current.
func (m *StateMachine) OnEnter(s State, fn func(from State)) {
	m.onEnter[s] = append(m.onEnter[s], fn)
}
