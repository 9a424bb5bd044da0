// Package httpform is the transport adapter between net/http submissions and
// the formwork core. It decodes url.Values into the core's single-value-per-
// path model, flattening multi-valued keys into numeric child paths so
// sequence-valued forms (forms.Seq) can bind them.
package httpform

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	formwork "github.com/formwork-dev/formwork"
)

// FromValues flattens decoded form values into formwork input. A key with
// one value stays at its own path; a key with several becomes key.0, key.1,
// and so on, preserving submission order.
//
// A submission can name a path both ways: a literal key "tags.0" next to a
// repeated key "tags" whose first value would flatten to the same path. The
// literal key wins; flattening never overwrites a path the submission spelled
// out itself.
func FromValues(vals url.Values) formwork.Values {
	out := make(formwork.Values, len(vals))
	for k, vs := range vals {
		if len(vs) == 1 {
			out[k] = vs[0]
		}
	}
	for k, vs := range vals {
		if len(vs) < 2 {
			continue
		}
		for i, v := range vs {
			p := k + formwork.Separator + strconv.Itoa(i)
			if _, taken := out[p]; taken {
				continue
			}
			out[p] = v
		}
	}
	return out
}

// FromRequest parses the request's form body and query string and flattens
// them via FromValues. POST/PUT/PATCH bodies take precedence over query
// parameters with the same key, per net/http's r.Form ordering.
func FromRequest(r *http.Request) (formwork.Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("httpform: parse form: %w", err)
	}
	return FromValues(r.Form), nil
}
