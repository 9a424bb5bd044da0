package formwork

import "context"

// Bind is the primary entry point. It binds f against in rooted at the whole
// form and returns the typed value, or every collected issue as the error.
// Binding is exhaustive: sibling fields are all visited before failure is
// reported, so one round trip surfaces every problem.
func Bind[T any](ctx context.Context, f Form[T], in Values) (T, error) {
	var zero T
	if f == nil {
		return zero, Issues{IssueAt(RootPath, CodeParseError, "nil form")}
	}
	v, iss := f.Bind(ctx, RootPath, in)
	if len(iss) > 0 {
		return zero, iss
	}
	return v, nil
}

// BindView binds f against in and additionally snapshots the attempt as a
// View for re-rendering. The View is valid whether or not binding succeeded;
// on failure the returned error is the same Issues the View carries.
func BindView[T any](ctx context.Context, f Form[T], in Values) (T, View, error) {
	var zero T
	if f == nil {
		iss := Issues{IssueAt(RootPath, CodeParseError, "nil form")}
		return zero, View{issues: iss}, iss
	}
	if in == nil {
		in = Values{}
	}
	v, iss := f.Bind(ctx, RootPath, in)
	view := ViewOf(f, in, iss)
	if len(iss) > 0 {
		return zero, view, iss
	}
	return v, view, nil
}
