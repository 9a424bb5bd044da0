package forms

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	formwork "github.com/formwork-dev/formwork"
	"github.com/formwork-dev/formwork/i18n"
)

// MinLen rejects values shorter than n runes.
func MinLen(f formwork.Form[string], n int) formwork.Form[string] {
	return Checked(f, func(_ context.Context, s string) error {
		if utf8.RuneCountInString(s) < n {
			return formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeTooShort, i18n.T(formwork.CodeTooShort, map[string]string{"min": strconv.Itoa(n)}))}
		}
		return nil
	})
}

// MaxLen rejects values longer than n runes.
func MaxLen(f formwork.Form[string], n int) formwork.Form[string] {
	return Checked(f, func(_ context.Context, s string) error {
		if utf8.RuneCountInString(s) > n {
			return formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeTooLong, i18n.T(formwork.CodeTooLong, map[string]string{"max": strconv.Itoa(n)}))}
		}
		return nil
	})
}

// Pattern rejects values that do not match re.
func Pattern(f formwork.Form[string], re *regexp.Regexp) formwork.Form[string] {
	if re == nil {
		panic("forms.Pattern: nil pattern")
	}
	return Checked(f, func(_ context.Context, s string) error {
		if !re.MatchString(s) {
			return formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodePattern, i18n.T(formwork.CodePattern, map[string]string{"pattern": re.String()}))}
		}
		return nil
	})
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email rejects values that do not look like an email address.
func Email(f formwork.Form[string]) formwork.Form[string] {
	return Checked(f, func(_ context.Context, s string) error {
		if !emailPattern.MatchString(s) {
			return formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeInvalidEmail, i18n.T(formwork.CodeInvalidEmail, nil))}
		}
		return nil
	})
}

// Range rejects numeric values outside [min, max].
func Range[T interface {
	~int | ~int64 | ~float64
}](f formwork.Form[T], min, max T) formwork.Form[T] {
	return Checked(f, func(_ context.Context, v T) error {
		if v < min || v > max {
			return formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeOutOfRange, i18n.T(formwork.CodeOutOfRange, map[string]string{"min": fmt.Sprint(min), "max": fmt.Sprint(max)}))}
		}
		return nil
	})
}
