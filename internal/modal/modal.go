// Package modal is the single-active-modal workflow state machine shared by the
// list screens: one mode, one selection, one in-flight guard. Modeling the mode
// as a tagged state rules out two modals being open at once.
package modal

type Mode int

const (
	Closed Mode = iota
	Add
	Edit
	Delete
)

func (m Mode) String() string {
	switch m {
	case Add:
		return "add"
	case Edit:
		return "edit"
	case Delete:
		return "delete"
	default:
		return "closed"
	}
}

// State tracks the active modal for one screen. T is the screen's row type.
type State[T any] struct {
	mode       Mode
	selected   *T
	submitting bool
}

func (s *State[T]) Mode() Mode { return s.mode }

// Selected returns the entity being edited or deleted, if any.
func (s *State[T]) Selected() (T, bool) {
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

func (s *State[T]) Submitting() bool { return s.submitting }

func (s *State[T]) OpenAdd() {
	s.mode = Add
	s.selected = nil
	s.submitting = false
}

func (s *State[T]) OpenEdit(v T) {
	s.mode = Edit
	s.selected = &v
	s.submitting = false
}

func (s *State[T]) OpenDelete(v T) {
	s.mode = Delete
	s.selected = &v
	s.submitting = false
}

// Close clears the selection and the submitting flag.
func (s *State[T]) Close() {
	s.mode = Closed
	s.selected = nil
	s.submitting = false
}

// Begin marks a submission in flight. It reports false when the modal is closed
// or a submission is already running; callers must ignore the trigger then.
// This is the system's only concurrency guard.
func (s *State[T]) Begin() bool {
	if s.mode == Closed || s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// End clears the in-flight flag without closing the modal.
func (s *State[T]) End() { s.submitting = false }
