package forms_test

import (
	"context"
	"testing"

	formwork "github.com/formwork-dev/formwork"
	"github.com/formwork-dev/formwork/forms"
)

func bindOne[T any](t *testing.T, f formwork.Form[T], value string, present bool) (T, formwork.Issues) {
	t.Helper()
	in := formwork.Values{}
	if present {
		in["v"] = value
	}
	v, err := formwork.Bind(context.Background(), forms.Label("v", f), in)
	iss, _ := formwork.AsIssues(err)
	return v, iss
}

func TestText_AcceptsAnything(t *testing.T) {
	v, iss := bindOne(t, forms.Text(""), "", true)
	if len(iss) != 0 || v != "" {
		t.Fatalf("empty text should bind, got %q %v", v, iss)
	}
}

func TestNonEmptyText_RejectsBlank(t *testing.T) {
	_, iss := bindOne(t, forms.NonEmptyText(""), "   ", true)
	if len(iss) != 1 || iss[0].Code != formwork.CodeRequired {
		t.Fatalf("expected required, got %v", iss)
	}
}

func TestBool_CheckboxSemantics(t *testing.T) {
	// absent checkbox is false, not an error
	v, iss := bindOne(t, forms.Bool(false), "", false)
	if len(iss) != 0 || v {
		t.Fatalf("absent checkbox should be false, got %v %v", v, iss)
	}
	v, iss = bindOne(t, forms.Bool(false), "on", true)
	if len(iss) != 0 || !v {
		t.Fatalf("on should be true, got %v %v", v, iss)
	}
	v, iss = bindOne(t, forms.Bool(true), "", false)
	if len(iss) != 0 || !v {
		t.Fatalf("default true should apply when absent, got %v %v", v, iss)
	}
	_, iss = bindOne(t, forms.Bool(false), "maybe", true)
	if len(iss) != 1 || iss[0].Code != formwork.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", iss)
	}
}

func TestInt_ParseAndRequired(t *testing.T) {
	v, iss := bindOne(t, forms.Int(""), "42", true)
	if len(iss) != 0 || v != 42 {
		t.Fatalf("expected 42, got %v %v", v, iss)
	}
	_, iss = bindOne(t, forms.Int(""), "", false)
	if len(iss) != 1 || iss[0].Code != formwork.CodeRequired {
		t.Fatalf("expected required, got %v", iss)
	}
	_, iss = bindOne(t, forms.Int(""), "0.oops", true)
	if len(iss) != 1 || iss[0].Code != formwork.CodeInvalidNumber {
		t.Fatalf("expected invalid_number, got %v", iss)
	}
}

func TestFloat_Parse(t *testing.T) {
	v, iss := bindOne(t, forms.Float(""), "2.5", true)
	if len(iss) != 0 || v != 2.5 {
		t.Fatalf("expected 2.5, got %v %v", v, iss)
	}
}

func TestChoice_MembersOnly(t *testing.T) {
	v, iss := bindOne(t, forms.Choice("", "red", "green"), "red", true)
	if len(iss) != 0 || v != "red" {
		t.Fatalf("expected red, got %v %v", v, iss)
	}
	_, iss = bindOne(t, forms.Choice("", "red", "green"), "blue", true)
	if len(iss) != 1 || iss[0].Code != formwork.CodeInvalidChoice {
		t.Fatalf("expected invalid_choice, got %v", iss)
	}
	_, iss = bindOne(t, forms.Choice("", "red", "green"), "", false)
	if len(iss) != 1 || iss[0].Code != formwork.CodeRequired {
		t.Fatalf("expected required, got %v", iss)
	}
	// default satisfies a missing submission
	v, iss = bindOne(t, forms.Choice("green", "red", "green"), "", false)
	if len(iss) != 0 || v != "green" {
		t.Fatalf("expected default green, got %v %v", v, iss)
	}
}

func TestRules_LengthPatternRange(t *testing.T) {
	_, iss := bindOne(t, forms.MinLen(forms.Text(""), 3), "ab", true)
	if len(iss) != 1 || iss[0].Code != formwork.CodeTooShort {
		t.Fatalf("expected too_short, got %v", iss)
	}
	if iss[0].Message != "Must be at least 3 characters" {
		t.Fatalf("unexpected message: %q", iss[0].Message)
	}
	_, iss = bindOne(t, forms.MaxLen(forms.Text(""), 2), "abc", true)
	if len(iss) != 1 || iss[0].Code != formwork.CodeTooLong {
		t.Fatalf("expected too_long, got %v", iss)
	}
	_, iss = bindOne(t, forms.Range(forms.Int(""), 1, 10), "11", true)
	if len(iss) != 1 || iss[0].Code != formwork.CodeOutOfRange {
		t.Fatalf("expected out_of_range, got %v", iss)
	}
}
