package formwork

// View is an immutable snapshot of one bind attempt (or of a fresh, unbound
// form): the form's declared shape, the raw input used to bind it, and the
// issues binding produced. Sub-views are projections over the same underlying
// data scoped to a path prefix; nothing is copied or rewritten, and all
// accessor paths stay absolute.
type View struct {
	shape  Node   // shape of the whole form
	root   Path   // prefix this view is scoped to
	node   Node   // shape at root
	input  Values // nil when no input was ever bound
	issues Issues // scoped to root, traversal order
}

// NewView snapshots a fresh, unbound form for first display: no input, no
// issues, field values fall back to declared defaults.
func NewView(f Shaper) View { return ViewOf(f, nil, nil) }

// ViewOf snapshots a form together with the input it was bound against (nil
// for none) and the issues that bind produced.
func ViewOf(f Shaper, in Values, iss Issues) View {
	n := f.Shape()
	return View{shape: n, node: n, input: in, issues: iss}
}

// Shape returns the structure at this view's scope, for structural recursion
// by renderers.
func (v View) Shape() Node { return v.node }

// Root returns the absolute path this view is scoped to; the zero path for a
// whole-form view.
func (v View) Root() Path { return v.root }

// Bound reports whether any input was bound into this view.
func (v View) Bound() bool { return v.input != nil }

// Err returns the view's issues as an error, or nil when binding succeeded
// (or never happened).
func (v View) Err() error {
	if len(v.issues) == 0 {
		return nil
	}
	return v.issues
}

// Issues returns a copy of the view's issues in traversal order.
func (v View) Issues() Issues {
	return append(Issues(nil), v.issues...)
}

// Sub projects the view onto the sub-tree at prefix (relative to the view's
// own scope). The underlying input is shared unchanged; issues are filtered
// to the prefix and its descendants. A prefix the form does not declare is a
// lookup error: it indicates a renderer bug, not user input.
//
// Sub composes: v.Sub(p).Sub(q) equals v.Sub(p.Join(q)).
func (v View) Sub(prefix Path) (View, error) {
	if prefix.IsRoot() {
		return v, nil
	}
	abs := v.root.Join(prefix)
	node, err := NodeAt(v.shape, abs)
	if err != nil {
		return View{}, err
	}
	var scoped Issues
	for _, it := range v.issues {
		if abs.IsPrefixOf(it.Path) {
			scoped = append(scoped, it)
		}
	}
	return View{shape: v.shape, root: abs, node: node, input: v.input, issues: scoped}, nil
}

// FieldValue returns the submitted raw text at the absolute path p for
// re-display. When no input was ever bound (a fresh form), it falls back to
// the leaf's declared default text.
func (v View) FieldValue(p Path) (string, bool) {
	if v.input != nil {
		return v.input.Get(p)
	}
	n, err := NodeAt(v.shape, p)
	if err != nil {
		return "", false
	}
	f, ok := n.(Field)
	if !ok || f.Default == "" {
		return "", false
	}
	return f.Default, true
}

// FieldErrors returns the messages of issues recorded exactly at p, for
// inline display next to the offending field.
func (v View) FieldErrors(p Path) []string {
	var out []string
	for _, it := range v.issues {
		if it.Path.Equal(p) {
			out = append(out, it.Message)
		}
	}
	return out
}

// DescendantErrors returns every issue at or under prefix in traversal order,
// for an aggregated error block covering a whole sub-form.
func (v View) DescendantErrors(prefix Path) Issues {
	var out Issues
	for _, it := range v.issues {
		if prefix.IsPrefixOf(it.Path) {
			out = append(out, it)
		}
	}
	return out
}

// Indexes returns the numeric child labels submitted directly under prefix,
// in ascending order; renderers use it to re-display sequence-valued fields.
func (v View) Indexes(prefix Path) []int {
	if v.input == nil {
		return nil
	}
	return v.input.Indexes(prefix)
}
