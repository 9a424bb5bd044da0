package formwork

import (
	"sort"
	"strconv"
)

// Values is the raw input a transport adapter decoded from a submission: a
// mapping from rendered path text to submitted text. A path absent from the
// map means "no value submitted"; leaves decide what that means. At most one
// value is stored per path; adapters flatten multi-valued submissions into
// indexed child paths (see httpform).
//
// A Values map is treated as immutable once handed to Bind; callers must not
// mutate it while binds or views reference it.
type Values map[string]string

// Get returns the submitted text for p, if any.
func (v Values) Get(p Path) (string, bool) {
	s, ok := v[p.String()]
	return s, ok
}

// Indexes returns the distinct numeric child labels present directly under
// prefix, in ascending order. Sequence-valued forms use it to discover how
// many elements were submitted.
func (v Values) Indexes(prefix Path) []int {
	seen := map[int]struct{}{}
	base := prefix.Len()
	for k := range v {
		p := ParsePath(k)
		if p.Len() <= base || !prefix.IsPrefixOf(p) {
			continue
		}
		seg := p.Segments()[base]
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 {
			continue
		}
		seen[i] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
