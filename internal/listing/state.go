// Package listing holds the list view's data model and its state machine.
//
// Transitions are pure: Transition never mutates the State it is given, so the
// view can be tested without a terminal.
package listing

// Phase is the coarse state of the list view.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseError   Phase = "error"
)

// Op names the request that produced an error.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
)

// State is the list view state. Items holds the last successful snapshot in
// backend order; use Visible for display order.
type State struct {
	Loading bool
	Items   []Item
	Err     error

	errOp Op
}

// Initial is the state on mount.
func Initial() State {
	return State{Loading: true, Items: []Item{}}
}

// Phase derives the state machine phase.
func (s State) Phase() Phase {
	switch {
	case s.Err != nil:
		return PhaseError
	case s.Loading:
		return PhaseLoading
	default:
		return PhaseLoaded
	}
}

// ErrOp reports which request raised Err. Empty when Err is nil.
func (s State) ErrOp() Op {
	if s.Err == nil {
		return ""
	}
	return s.errOp
}

// Event is an input to Transition.
type Event interface {
	event()
}

// Loaded reports a list fetch that decoded successfully. Nil Items means the
// backend returned an empty or null body.
type Loaded struct {
	Items []Item
}

// Failed reports a fetch or decode failure.
type Failed struct {
	Op  Op
	Err error
}

// Dismissed reports that the user closed the error notification.
type Dismissed struct{}

func (Loaded) event()    {}
func (Failed) event()    {}
func (Dismissed) event() {}

// Transition returns the state that follows s after ev.
func Transition(s State, ev Event) State {
	next := s
	switch e := ev.(type) {
	case Loaded:
		next.Loading = false
		next.Items = e.Items
		if next.Items == nil {
			next.Items = []Item{}
		}
		// a create failure stays visible across the reload that follows it
		if next.errOp != OpCreate {
			next.Err = nil
			next.errOp = ""
		}
	case Failed:
		if e.Err == nil {
			return s
		}
		next.Err = e.Err
		next.errOp = e.Op
		if e.Op == OpList {
			next.Loading = false
		}
	case Dismissed:
		next.Err = nil
		next.errOp = ""
	}
	return next
}

// Visible returns the items in display order.
func (s State) Visible() []Item {
	return SortedByTitle(s.Items)
}

// ShowEmpty reports whether the empty-list message should be rendered.
func (s State) ShowEmpty() bool {
	return len(s.Items) == 0 && !s.Loading
}
