package forms

import (
	"context"
	"fmt"

	formwork "github.com/formwork-dev/formwork"
)

type product[A, B, C any] struct {
	a       formwork.Form[A]
	b       formwork.Form[B]
	combine func(A, B) C
	shape   formwork.Node
}

// Product combines two independent sub-forms into one whose path set is the
// disjoint union of both sides and whose successful bind yields
// combine(valueA, valueB). Colliding paths panic at composition time.
//
// Binding never short-circuits across the two branches: both are bound
// unconditionally so a single pass discovers every field-level issue, a-side
// entries before b-side entries.
func Product[A, B, C any](a formwork.Form[A], b formwork.Form[B], combine func(A, B) C) formwork.Form[C] {
	if a == nil || b == nil {
		panic("forms.Product: nil form")
	}
	if combine == nil {
		panic("forms.Product: nil combine function")
	}
	shape := mergeNodes(formwork.RootPath, a.Shape(), b.Shape())
	return product[A, B, C]{a: a, b: b, combine: combine, shape: shape}
}

type pair[A, B any] struct {
	a A
	b B
}

// Map3 is Product extended to three sub-forms.
func Map3[A, B, C, D any](a formwork.Form[A], b formwork.Form[B], c formwork.Form[C], combine func(A, B, C) D) formwork.Form[D] {
	if combine == nil {
		panic("forms.Map3: nil combine function")
	}
	left := Product(a, b, func(x A, y B) pair[A, B] { return pair[A, B]{a: x, b: y} })
	return Product(left, c, func(l pair[A, B], z C) D { return combine(l.a, l.b, z) })
}

// Map4 is Product extended to four sub-forms.
func Map4[A, B, C, D, E any](a formwork.Form[A], b formwork.Form[B], c formwork.Form[C], d formwork.Form[D], combine func(A, B, C, D) E) formwork.Form[E] {
	if combine == nil {
		panic("forms.Map4: nil combine function")
	}
	left := Map3(a, b, c, func(x A, y B, z C) pair[pair[A, B], C] {
		return pair[pair[A, B], C]{a: pair[A, B]{a: x, b: y}, b: z}
	})
	return Product(left, d, func(l pair[pair[A, B], C], w D) E { return combine(l.a.a, l.a.b, l.b, w) })
}

func (p product[A, B, C]) Bind(ctx context.Context, at formwork.Path, in formwork.Values) (C, formwork.Issues) {
	av, ai := p.a.Bind(ctx, at, in)
	bv, bi := p.b.Bind(ctx, at, in)
	if len(ai)+len(bi) > 0 {
		var zero C
		iss := make(formwork.Issues, 0, len(ai)+len(bi))
		iss = append(iss, ai...)
		iss = append(iss, bi...)
		return zero, iss
	}
	return p.combine(av, bv), nil
}

func (p product[A, B, C]) Shape() formwork.Node { return p.shape }

// mergeNodes structurally merges the shapes of two product branches. Shared
// group labels merge recursively; any overlap that would put two leaves on
// the same path, or a leaf on a prefix of another field, is a definition-time
// collision.
func mergeNodes(at formwork.Path, a, b formwork.Node) formwork.Node {
	ga, aok := a.(formwork.Group)
	gb, bok := b.(formwork.Group)
	if !aok || !bok {
		loc := at.String()
		if loc == "" {
			loc = "(root)"
		}
		panic(fmt.Sprintf("forms.Product: colliding paths at %s", loc))
	}
	names := append([]string(nil), ga.Names...)
	children := make(map[string]formwork.Node, len(ga.Children)+len(gb.Children))
	for k, v := range ga.Children {
		children[k] = v
	}
	for _, name := range gb.Names {
		child := gb.Children[name]
		if existing, ok := children[name]; ok {
			children[name] = mergeNodes(at.Child(name), existing, child)
			continue
		}
		names = append(names, name)
		children[name] = child
	}
	return formwork.Group{Names: names, Children: children}
}
