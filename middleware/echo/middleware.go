package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	formwork "github.com/formwork-dev/formwork"
	"github.com/formwork-dev/formwork/httpform"
	"github.com/formwork-dev/formwork/middleware"
)

// BindForm binds the submitted form against f, stores the typed value in the
// request context on success, or returns 422 with the path-addressed issue
// payload when binding fails.
func BindForm[T any](f formwork.Form[T]) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			in, err := httpform.FromRequest(c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			v, view, err := formwork.BindView(c.Request().Context(), f, in)
			if err != nil {
				body, encErr := middleware.EncodePayload(view)
				if encErr != nil {
					return encErr
				}
				return c.JSONBlob(http.StatusUnprocessableEntity, body)
			}
			ctx := middleware.ContextWithBound(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// Bound fetches the bound T from echo.Context.
func Bound[T any](c echo.Context) (T, bool) {
	return middleware.BoundFromContext[T](c.Request().Context())
}
