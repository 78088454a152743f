package scheduler

// StringSet is a minimal set of identifiers.
type StringSet map[string]struct{}

// Add inserts the value.
func (s StringSet) Add(value string) {
	s[value] = struct{}{}
}

// Has reports whether the value is present. A nil set holds nothing.
func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// RunState holds the reservation and dedup sets of one resolution pass.
// It must not be shared between passes.
type RunState struct {
	ReservedRooms    StringSet
	SuggestedCourses StringSet
}

// NewRunState returns empty per-run state.
func NewRunState() *RunState {
	return &RunState{
		ReservedRooms:    make(StringSet),
		SuggestedCourses: make(StringSet),
	}
}
