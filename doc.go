package formwork

// Package formwork provides:
//
// - A declarative, composable form algebra (leaf fields, labeled nesting,
//   applicative products, validation wrappers) built in the forms subpackage
// - A binder turning raw submitted key/value text into typed values, with
//   exhaustive, path-addressed error collection via Issues
// - An immutable, renderer-agnostic View pairing a form's shape with the
//   input used to bind it and the issues that binding produced
//
// Design policy:
// - Keep only public APIs in the root package; combinators live under forms/.
// - Transport and renderer adapters live under httpform/, middleware/ and
//   render/; the core performs no I/O of its own.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	userForm := forms.Product(
//		forms.Label("name", forms.NonEmptyText("")),
//		forms.Label("mail", forms.Email(forms.Text(""))),
//		func(name, mail string) User { return User{Name: name, Mail: mail} },
//	)
//
//	u, view, err := formwork.BindView(ctx, userForm, in)
//	if err != nil {
//		// hand view to a renderer; every issue is addressed to the
//		// exact field that produced it
//	}
