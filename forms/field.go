package forms

import (
	"context"

	formwork "github.com/formwork-dev/formwork"
)

type field[T any] struct {
	def     string
	kind    string
	options []string
	parse   func(context.Context, string) (T, error)
}

// Field builds a one-field form. When the input carries no value at the
// field's path, the default text (or the empty string) is parsed instead;
// the parse function decides whether that is an error.
//
// A parse error is recorded at the field's own path. Returning a
// formwork.Issues error keeps its code; any other error is wrapped as
// CodeParseError with the error text as message.
func Field[T any](def string, parse func(ctx context.Context, text string) (T, error)) formwork.Form[T] {
	if parse == nil {
		panic("forms.Field: nil parse function")
	}
	return field[T]{def: def, kind: formwork.KindText, parse: parse}
}

func fieldOf[T any](def, kind string, options []string, parse func(context.Context, string) (T, error)) formwork.Form[T] {
	return field[T]{def: def, kind: kind, options: options, parse: parse}
}

func (f field[T]) Bind(ctx context.Context, at formwork.Path, in formwork.Values) (T, formwork.Issues) {
	text, ok := in.Get(at)
	if !ok {
		text = f.def
	}
	v, err := f.parse(ctx, text)
	if err != nil {
		var zero T
		if iss, ok := formwork.AsIssues(err); ok {
			return zero, formwork.Rebase(at, iss)
		}
		return zero, formwork.Issues{{Path: at, Code: formwork.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return v, nil
}

func (f field[T]) Shape() formwork.Node {
	return formwork.Field{Default: f.def, Kind: f.kind, Options: append([]string(nil), f.options...)}
}
