package forms

import (
	"context"
	"strconv"

	formwork "github.com/formwork-dev/formwork"
)

type seq[T any] struct {
	elem formwork.Form[T]
}

// Seq is the sequence-valued extension point for multi-valued submissions
// (repeated checkboxes, multi-selects). Transport adapters flatten repeated
// keys into numeric child paths (tags.0, tags.1, ...); Seq binds whichever
// indexes the input carries, in ascending order, and yields their values as
// a slice. No submitted indexes bind to an empty slice.
//
// A lone value submitted at the sequence's own path (a single-valued leaf
// submission that was never indexed) binds as a one-element sequence.
func Seq[T any](elem formwork.Form[T]) formwork.Form[[]T] {
	if elem == nil {
		panic("forms.Seq: nil form")
	}
	return seq[T]{elem: elem}
}

func (s seq[T]) Bind(ctx context.Context, at formwork.Path, in formwork.Values) ([]T, formwork.Issues) {
	idx := in.Indexes(at)
	if len(idx) == 0 {
		if _, ok := in.Get(at); ok {
			v, iss := s.elem.Bind(ctx, at, in)
			if len(iss) > 0 {
				return nil, iss
			}
			return []T{v}, nil
		}
		return nil, nil
	}
	out := make([]T, 0, len(idx))
	var iss formwork.Issues
	for _, i := range idx {
		v, more := s.elem.Bind(ctx, at.Child(strconv.Itoa(i)), in)
		if len(more) > 0 {
			iss = formwork.AppendIssues(iss, more...)
			continue
		}
		out = append(out, v)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (s seq[T]) Shape() formwork.Node {
	return formwork.List{Elem: s.elem.Shape()}
}
