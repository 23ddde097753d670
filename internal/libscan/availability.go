package libscan

// AvailableSet holds the basenames of shared libraries present under the
// library roots. Presence is by name only: a symlinked or unparseable
// library still counts as available.
type AvailableSet struct {
	names map[string]struct{}
}

// NewAvailableSet creates an empty AvailableSet.
func NewAvailableSet() *AvailableSet {
	return &AvailableSet{names: make(map[string]struct{})}
}

// Add records name as available. Adding a name twice is a no-op.
func (s *AvailableSet) Add(name string) {
	s.names[name] = struct{}{}
}

// Contains reports whether name is available.
func (s *AvailableSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of distinct available names.
func (s *AvailableSet) Len() int {
	return len(s.names)
}
