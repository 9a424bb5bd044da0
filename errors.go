package formwork

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError    = "parse_error"
	CodeRequired      = "required"
	CodeInvalidNumber = "invalid_number"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidChoice = "invalid_choice"
	CodeInvalidEmail  = "invalid_email"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeOutOfRange    = "out_of_range"
	CodeCheckFailed   = "check_failed"
)

// Issue represents a single binding or validation entry.
type Issue struct {
	Path    Path   // Address of the field or sub-form that produced the issue.
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of binding errors that implements error. Entries are
// ordered by depth-first, left-to-right traversal of the form tree; renderers
// may depend on that order.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. parse_error at package.version
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// IssueAt creates an Issue at the given path with the provided code and
// message. Convenience for call sites that build issues inline.
func IssueAt(p Path, code, msg string) Issue {
	return Issue{Path: p, Code: code, Message: msg}
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Rebase prefixes base onto the path of every issue. Combinators use it to
// lift issues reported relative to a sub-form into their absolute position.
func Rebase(base Path, iss Issues) Issues {
	if base.IsRoot() || len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = base.Join(it.Path)
		out[i] = it
	}
	return out
}

// ErrPathNotFound reports a sub-view or shape lookup for a path the form does
// not declare. It indicates a renderer or template bug, never user input.
var ErrPathNotFound = errors.New("formwork: path not found")
