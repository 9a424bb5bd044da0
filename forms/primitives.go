package forms

import (
	"context"
	"strconv"
	"strings"

	formwork "github.com/formwork-dev/formwork"
	"github.com/formwork-dev/formwork/i18n"
)

// Text binds any submitted text, including the empty string.
func Text(def string) formwork.Form[string] {
	return fieldOf(def, formwork.KindText, nil, func(_ context.Context, text string) (string, error) {
		return text, nil
	})
}

// NonEmptyText binds text that must not be blank.
func NonEmptyText(def string) formwork.Form[string] {
	return fieldOf(def, formwork.KindText, nil, func(_ context.Context, text string) (string, error) {
		if strings.TrimSpace(text) == "" {
			return "", requiredIssue()
		}
		return text, nil
	})
}

// Bool binds checkbox-style submissions: an absent or empty value is false,
// the conventional checked markers are true.
func Bool(def bool) formwork.Form[bool] {
	d := ""
	if def {
		d = "true"
	}
	return fieldOf(d, formwork.KindCheckbox, nil, func(_ context.Context, text string) (bool, error) {
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "", "false", "off", "0":
			return false, nil
		case "true", "on", "1", "checked":
			return true, nil
		}
		return false, formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeInvalidFormat, i18n.T(formwork.CodeInvalidFormat, map[string]string{"expected": "boolean"}))}
	})
}

// Int binds a required integer.
func Int(def string) formwork.Form[int] {
	return fieldOf(def, formwork.KindNumber, nil, func(_ context.Context, text string) (int, error) {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return 0, requiredIssue()
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeInvalidNumber, i18n.T(formwork.CodeInvalidNumber, nil))}
		}
		return n, nil
	})
}

// Float binds a required floating point number.
func Float(def string) formwork.Form[float64] {
	return fieldOf(def, formwork.KindNumber, nil, func(_ context.Context, text string) (float64, error) {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return 0, requiredIssue()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeInvalidNumber, i18n.T(formwork.CodeInvalidNumber, nil))}
		}
		return f, nil
	})
}

// Choice binds a value that must be one of the declared options.
func Choice(def string, options ...string) formwork.Form[string] {
	opts := append([]string(nil), options...)
	return fieldOf(def, formwork.KindSelect, opts, func(_ context.Context, text string) (string, error) {
		if text == "" {
			return "", requiredIssue()
		}
		for _, o := range opts {
			if o == text {
				return text, nil
			}
		}
		return "", formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeInvalidChoice, i18n.T(formwork.CodeInvalidChoice, nil))}
	})
}

func requiredIssue() formwork.Issues {
	return formwork.Issues{formwork.IssueAt(formwork.RootPath, formwork.CodeRequired, i18n.T(formwork.CodeRequired, nil))}
}
