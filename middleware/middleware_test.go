package middleware_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formwork "github.com/formwork-dev/formwork"
	"github.com/formwork-dev/formwork/forms"
	"github.com/formwork-dev/formwork/middleware"
)

type account struct{ Name string }

func TestContextStash_TypedPerValueType(t *testing.T) {
	ctx := middleware.ContextWithBound(context.Background(), account{Name: "Ann"})
	got, ok := middleware.BoundFromContext[account](ctx)
	require.True(t, ok)
	assert.Equal(t, "Ann", got.Name)

	// a different type under the same context is a miss, not a collision
	_, ok = middleware.BoundFromContext[string](ctx)
	assert.False(t, ok)
}

func TestErrorPayload_PathsAndOrder(t *testing.T) {
	f := forms.Product(
		forms.Label("name", forms.NonEmptyText("")),
		forms.Label("age", forms.Int("")),
		func(name string, age int) account { return account{Name: name} },
	)
	_, view, err := formwork.BindView(context.Background(), f, formwork.Values{"name": "", "age": "x"})
	require.Error(t, err)

	body, encErr := middleware.EncodePayload(view)
	require.NoError(t, encErr)

	var payload struct {
		Errors []struct {
			Path    string `json:"path"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Errors, 2)
	assert.Equal(t, "name", payload.Errors[0].Path)
	assert.Equal(t, formwork.CodeRequired, payload.Errors[0].Code)
	assert.Equal(t, "age", payload.Errors[1].Path)
	assert.Equal(t, formwork.CodeInvalidNumber, payload.Errors[1].Code)
	assert.NotEmpty(t, payload.Errors[0].Message)
}
