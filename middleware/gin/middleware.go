package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	formwork "github.com/formwork-dev/formwork"
	"github.com/formwork-dev/formwork/httpform"
	"github.com/formwork-dev/formwork/middleware"
)

// BindForm binds the submitted form against f, stores the typed value in the
// request context and calls the next handler, or aborts with 422 and the
// path-addressed issue payload when binding fails.
func BindForm[T any](f formwork.Form[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := httpform.FromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		v, view, err := formwork.BindView(c.Request.Context(), f, in)
		if err != nil {
			body, encErr := middleware.EncodePayload(view)
			if encErr != nil {
				_ = c.AbortWithError(http.StatusInternalServerError, encErr)
				return
			}
			c.Data(http.StatusUnprocessableEntity, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithBound(c.Request.Context(), v))
		c.Next()
	}
}

// Bound fetches the bound T from gin.Context.
func Bound[T any](c *gin.Context) (T, bool) {
	return middleware.BoundFromContext[T](c.Request.Context())
}
