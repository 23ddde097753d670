package libscan

import "sort"

// RequirementIndex records which scanned objects require which library
// names. It is written only by the dispatcher's merge goroutine; callers
// read it after the drain barrier.
type RequirementIndex struct {
	edges map[string][]requirer
}

type requirer struct {
	seq  uint64
	path string
}

// NewRequirementIndex creates an empty RequirementIndex.
func NewRequirementIndex() *RequirementIndex {
	return &RequirementIndex{edges: make(map[string][]requirer)}
}

// Add records that the object at path requires the library called name.
// seq is the submission sequence number; it restores submission order when
// workers complete out of order.
func (ix *RequirementIndex) Add(name, path string, seq uint64) {
	ix.edges[name] = append(ix.edges[name], requirer{seq: seq, path: path})
}

// Len returns the number of distinct required names.
func (ix *RequirementIndex) Len() int {
	return len(ix.edges)
}

// MissingAgainst returns every required name absent from available, each
// with its full requirer list in submission order. Names are sorted, so the
// result is identical regardless of worker count.
func (ix *RequirementIndex) MissingAgainst(available *AvailableSet) []MissingLibrary {
	missing := make([]MissingLibrary, 0)
	for name, reqs := range ix.edges {
		if available.Contains(name) {
			continue
		}

		sorted := append([]requirer(nil), reqs...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].seq < sorted[j].seq })

		paths := make([]string, len(sorted))
		for i, r := range sorted {
			paths[i] = r.path
		}
		missing = append(missing, MissingLibrary{Name: name, RequiredBy: paths})
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i].Name < missing[j].Name })
	return missing
}
