package forms

import (
	"context"

	formwork "github.com/formwork-dev/formwork"
)

type check[A, B any] struct {
	inner formwork.Form[A]
	fn    func(context.Context, A) (B, error)
}

// Check wraps f with a secondary conversion applied after f binds
// successfully. When f itself fails, the check is never invoked and f's
// issues propagate unchanged; this short-circuit is the one place the engine
// stops early, and it never crosses Product siblings.
//
// A check failure is recorded at the wrapping node's own path (the scope the
// wrapped sub-form is bound at), because the check is owned by the wrapper,
// not by any single leaf underneath it.
func Check[A, B any](f formwork.Form[A], fn func(ctx context.Context, v A) (B, error)) formwork.Form[B] {
	if f == nil {
		panic("forms.Check: nil form")
	}
	if fn == nil {
		panic("forms.Check: nil check function")
	}
	return check[A, B]{inner: f, fn: fn}
}

// Checked is Check for validations that keep the value type.
func Checked[A any](f formwork.Form[A], fn func(ctx context.Context, v A) error) formwork.Form[A] {
	if fn == nil {
		panic("forms.Checked: nil check function")
	}
	return Check(f, func(ctx context.Context, v A) (A, error) {
		if err := fn(ctx, v); err != nil {
			var zero A
			return zero, err
		}
		return v, nil
	})
}

func (c check[A, B]) Bind(ctx context.Context, at formwork.Path, in formwork.Values) (B, formwork.Issues) {
	var zero B
	a, iss := c.inner.Bind(ctx, at, in)
	if len(iss) > 0 {
		return zero, iss
	}
	b, err := c.fn(ctx, a)
	if err != nil {
		if more, ok := formwork.AsIssues(err); ok {
			return zero, formwork.Rebase(at, more)
		}
		return zero, formwork.Issues{{Path: at, Code: formwork.CodeCheckFailed, Message: err.Error(), Cause: err}}
	}
	return b, nil
}

func (c check[A, B]) Shape() formwork.Node { return c.inner.Shape() }
