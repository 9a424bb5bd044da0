package forms

import (
	"context"
	"strings"

	formwork "github.com/formwork-dev/formwork"
)

type labeled[T any] struct {
	name  string
	inner formwork.Form[T]
}

// Label nests f under name: every path f defines is prefixed with name, so
// independently authored sub-forms keep unambiguous field identity when
// combined. An empty name, or one containing the path separator, would make
// distinct fields collide and panics at composition time.
func Label[T any](name string, f formwork.Form[T]) formwork.Form[T] {
	mustLabel("forms.Label", name)
	if f == nil {
		panic("forms.Label: nil form")
	}
	return labeled[T]{name: name, inner: f}
}

func mustLabel(fn, name string) {
	if name == "" {
		panic(fn + ": empty label")
	}
	if strings.Contains(name, formwork.Separator) {
		panic(fn + ": label contains separator " + formwork.Separator)
	}
}

func (l labeled[T]) Bind(ctx context.Context, at formwork.Path, in formwork.Values) (T, formwork.Issues) {
	return l.inner.Bind(ctx, at.Child(l.name), in)
}

func (l labeled[T]) Shape() formwork.Node {
	return formwork.Group{
		Names:    []string{l.name},
		Children: map[string]formwork.Node{l.name: l.inner.Shape()},
	}
}
