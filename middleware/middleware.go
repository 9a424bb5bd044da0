package middleware

import (
	"context"

	json "github.com/goccy/go-json"

	formwork "github.com/formwork-dev/formwork"
)

// ctxKeyBound is a typed context key for storing a bound value.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyBound[T any] struct{}

// ContextWithBound attaches a successfully bound T to the context.
func ContextWithBound[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyBound[T]{}, v)
}

// BoundFromContext retrieves a bound T from context.
func BoundFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyBound[T]{}).(T)
	return v, ok
}

// errorEntry is a single issue in the wire payload.
type errorEntry struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorPayload shapes a failed bind's issues for JSON responses: one entry
// per issue, in traversal order, paths rendered in dotted form.
func ErrorPayload(view formwork.View) map[string]any {
	iss := view.Issues()
	entries := make([]errorEntry, 0, len(iss))
	for _, it := range iss {
		entries = append(entries, errorEntry{Path: it.Path.String(), Code: it.Code, Message: it.Message})
	}
	return map[string]any{"errors": entries}
}

// EncodePayload renders ErrorPayload as JSON bytes.
func EncodePayload(view formwork.View) ([]byte, error) {
	return json.Marshal(ErrorPayload(view))
}
