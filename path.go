package formwork

import "strings"

// Separator joins path segments in their textual form, e.g. "package.version".
const Separator = "."

// Path addresses one node in a form tree as an ordered sequence of labels.
// The zero value is the root path, which addresses the whole form. Paths are
// immutable; every operation returns a fresh value.
type Path struct {
	segs []string
}

// RootPath addresses the whole form.
var RootPath = Path{}

// ParsePath splits a dotted path text into segments. Empty segments produced
// by stray separators are dropped, so ParsePath("") and ParsePath(".") both
// yield the root path.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	parts := strings.Split(s, Separator)
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		segs = append(segs, p)
	}
	if len(segs) == 0 {
		return Path{}
	}
	return Path{segs: segs}
}

// String renders the path with the separator; the root path renders as "".
// For texts built from non-empty segments, ParsePath(p.String()) == p.
func (p Path) String() string { return strings.Join(p.segs, Separator) }

// IsRoot reports whether p addresses the whole form.
func (p Path) IsRoot() bool { return len(p.segs) == 0 }

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segs) }

// Segments returns a copy of the segment list.
func (p Path) Segments() []string {
	return append([]string(nil), p.segs...)
}

// Child returns p extended by one label. The result is never equal to p.
func (p Path) Child(label string) Path {
	segs := make([]string, 0, len(p.segs)+1)
	segs = append(segs, p.segs...)
	segs = append(segs, label)
	return Path{segs: segs}
}

// Join returns p extended by every segment of q.
func (p Path) Join(q Path) Path {
	if q.IsRoot() {
		return p
	}
	segs := make([]string, 0, len(p.segs)+len(q.segs))
	segs = append(segs, p.segs...)
	segs = append(segs, q.segs...)
	return Path{segs: segs}
}

// Equal reports structural, order-sensitive equality.
func (p Path) Equal(q Path) bool {
	if len(p.segs) != len(q.segs) {
		return false
	}
	for i := range p.segs {
		if p.segs[i] != q.segs[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether q is p itself or a descendant of p. The root
// path is a prefix of every path.
func (p Path) IsPrefixOf(q Path) bool {
	if len(p.segs) > len(q.segs) {
		return false
	}
	for i := range p.segs {
		if p.segs[i] != q.segs[i] {
			return false
		}
	}
	return true
}
