package formwork

import (
	"context"
	"fmt"
	"strconv"
)

// Form is an immutable, declarative description of one input structure. It is
// built once with the forms package combinators and may be bound concurrently
// against any number of independent submissions.
//
// Bind walks the form depth-first rooted at the absolute path at, reading raw
// text from in. It returns either the typed value or the complete list of
// issues, addressed by absolute path, in traversal order. Implementations are
// pure: the ctx is only forwarded to caller-supplied parse/check functions.
type Form[T any] interface {
	Bind(ctx context.Context, at Path, in Values) (T, Issues)
	Shaper
}

// Shaper exposes the declared structure of a form so renderers can recurse
// over it without reaching into implementation internals.
type Shaper interface {
	Shape() Node
}

// Node is the renderer-facing structural description of a form tree: a Field
// leaf, a Group of labeled children, or a List of uniform indexed elements.
// The sum is closed; binders and renderers may switch over it exhaustively.
type Node interface {
	node()
}

// Field kinds, hints for renderers choosing an input element.
const (
	KindText     = "text"
	KindCheckbox = "checkbox"
	KindNumber   = "number"
	KindSelect   = "select"
)

// Field describes a single input leaf.
type Field struct {
	Default string   // Pre-filled text shown before any input is bound.
	Kind    string   // One of the Kind constants.
	Options []string // Declared choices, for KindSelect.
}

func (Field) node() {}

// Group describes an internal node: an ordered mapping from label to child.
// Names carries the declaration order; Children is keyed by those names.
type Group struct {
	Names    []string
	Children map[string]Node
}

func (Group) node() {}

// List describes a sequence-valued node whose submitted elements all share
// the Elem structure, addressed by numeric labels.
type List struct {
	Elem Node
}

func (List) node() {}

// NodeAt resolves the node addressed by p, or ErrPathNotFound when the form
// declares no such path.
func NodeAt(n Node, p Path) (Node, error) {
	cur := n
	for i, seg := range p.Segments() {
		switch t := cur.(type) {
		case Group:
			child, ok := t.Children[seg]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrPathNotFound, Path{segs: p.segs[:i+1]}.String())
			}
			cur = child
		case List:
			if _, err := strconv.Atoi(seg); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrPathNotFound, Path{segs: p.segs[:i+1]}.String())
			}
			cur = t.Elem
		default:
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, Path{segs: p.segs[:i+1]}.String())
		}
	}
	return cur, nil
}
