package formwork_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	formwork "github.com/formwork-dev/formwork"
	"github.com/formwork-dev/formwork/forms"
)

var pathCmp = cmp.Comparer(func(a, b formwork.Path) bool { return a.Equal(b) })

type release struct {
	Author  [2]string
	Package [2]string
}

func releaseForm() formwork.Form[release] {
	pair := func(a, b string) [2]string { return [2]string{a, b} }
	return forms.Product(
		forms.Label("author", forms.Product(
			forms.Label("name", forms.NonEmptyText("")),
			forms.Label("mail", forms.Email(forms.Text(""))),
			pair,
		)),
		forms.Label("package", forms.Product(
			forms.Label("name", forms.NonEmptyText("formwork")),
			forms.Label("version", forms.Int("")),
			func(name string, version int) [2]string { return [2]string{name, strconv.Itoa(version)} },
		)),
		func(a, p [2]string) release { return release{Author: a, Package: p} },
	)
}

func bindRelease(t *testing.T, in formwork.Values) formwork.View {
	t.Helper()
	_, view, _ := formwork.BindView(context.Background(), releaseForm(), in)
	return view
}

func TestView_ErrorScoping(t *testing.T) {
	view := bindRelease(t, formwork.Values{
		"author.name":     "Ann",
		"author.mail":     "ann@example.com",
		"package.name":    "formwork",
		"package.version": "0.oops",
	})

	pkg := formwork.ParsePath("package")
	if got := view.DescendantErrors(pkg); len(got) != 1 || got[0].Path.String() != "package.version" {
		t.Fatalf("expected the version issue under package, got %v", got)
	}
	if got := view.DescendantErrors(formwork.ParsePath("author")); len(got) != 0 {
		t.Fatalf("author should carry no errors, got %v", got)
	}
	if msgs := view.FieldErrors(formwork.ParsePath("package.version")); len(msgs) != 1 {
		t.Fatalf("expected one inline message, got %v", msgs)
	}
	if msgs := view.FieldErrors(pkg); len(msgs) != 0 {
		t.Fatalf("prefix must not match exact lookup, got %v", msgs)
	}
}

func TestView_SubComposition(t *testing.T) {
	view := bindRelease(t, formwork.Values{
		"author.name":     "",
		"author.mail":     "bad",
		"package.version": "0.oops",
	})

	p1 := formwork.ParsePath("package")
	p2 := formwork.ParsePath("version")

	s1, err := view.Sub(p1)
	if err != nil {
		t.Fatalf("sub package: %v", err)
	}
	s12, err := s1.Sub(p2)
	if err != nil {
		t.Fatalf("sub version: %v", err)
	}
	direct, err := view.Sub(p1.Join(p2))
	if err != nil {
		t.Fatalf("sub package.version: %v", err)
	}

	if !s12.Root().Equal(direct.Root()) {
		t.Fatalf("roots differ: %v vs %v", s12.Root(), direct.Root())
	}
	if diff := cmp.Diff(direct.Issues(), s12.Issues(), pathCmp); diff != "" {
		t.Fatalf("issue sets differ (-direct +chained):\n%s", diff)
	}
}

func TestView_SubFiltersIssues(t *testing.T) {
	view := bindRelease(t, formwork.Values{
		"author.name":     "",
		"package.version": "0.oops",
	})
	sub, err := view.Sub(formwork.ParsePath("package"))
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	for _, it := range sub.Issues() {
		if !formwork.ParsePath("package").IsPrefixOf(it.Path) {
			t.Fatalf("leaked issue outside prefix: %v", it)
		}
	}
	// input stays shared and absolute
	if v, ok := sub.FieldValue(formwork.ParsePath("author.name")); !ok || v != "" {
		t.Fatalf("absolute lookups should still work, got %q ok=%v", v, ok)
	}
}

func TestView_SubUnknownPathFails(t *testing.T) {
	view := bindRelease(t, formwork.Values{})
	if _, err := view.Sub(formwork.ParsePath("nope")); !errors.Is(err, formwork.ErrPathNotFound) {
		t.Fatalf("expected ErrPathNotFound, got %v", err)
	}
}

func TestView_FieldValueFallsBackToDefaultWhenFresh(t *testing.T) {
	fresh := formwork.NewView(releaseForm())
	if fresh.Err() != nil {
		t.Fatalf("fresh view should carry no error")
	}
	if v, ok := fresh.FieldValue(formwork.ParsePath("package.name")); !ok || v != "formwork" {
		t.Fatalf("expected default fallback, got %q ok=%v", v, ok)
	}
	// once bound, absent means absent
	bound := bindRelease(t, formwork.Values{"author.name": "Ann"})
	if _, ok := bound.FieldValue(formwork.ParsePath("package.name")); ok {
		t.Fatalf("bound view must not fall back to defaults")
	}
	if v, ok := bound.FieldValue(formwork.ParsePath("author.name")); !ok || v != "Ann" {
		t.Fatalf("expected submitted value, got %q ok=%v", v, ok)
	}
}

func TestView_IssuesAreACopy(t *testing.T) {
	view := bindRelease(t, formwork.Values{"package.version": "0.oops"})
	got := view.Issues()
	if len(got) == 0 {
		t.Fatalf("expected issues")
	}
	got[0].Message = "tampered"
	if view.Issues()[0].Message == "tampered" {
		t.Fatalf("Issues must return a copy")
	}
}

func TestNodeAt_WalksShape(t *testing.T) {
	shape := releaseForm().Shape()
	n, err := formwork.NodeAt(shape, formwork.ParsePath("package.version"))
	if err != nil {
		t.Fatalf("node at: %v", err)
	}
	f, ok := n.(formwork.Field)
	if !ok || f.Kind != formwork.KindNumber {
		t.Fatalf("expected number field, got %#v", n)
	}
	if _, err := formwork.NodeAt(shape, formwork.ParsePath("package.missing")); !errors.Is(err, formwork.ErrPathNotFound) {
		t.Fatalf("expected ErrPathNotFound, got %v", err)
	}
}
