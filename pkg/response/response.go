package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "insighthub/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their status; anything else is a 400
// (binding and validation failures reach here unmapped).
func Error(c *gin.Context, err error) {
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		if he.StatusCode >= http.StatusInternalServerError {
			InternalError(c, err)
			return
		}
		c.JSON(he.StatusCode, Resp{
			ErrorCode: he.StatusCode,
			Message:   he.Message,
			Errors:    he.Details,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
	})
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Forbidden aborts the chain with 403.
func Forbidden(c *gin.Context) {
	abortWith(c, pkgErrors.ErrForbidden)
}

// TooManyRequests aborts the chain with 429.
func TooManyRequests(c *gin.Context) {
	abortWith(c, pkgErrors.ErrTooManyRequests)
}

func abortWith(c *gin.Context, he *pkgErrors.HTTPError) {
	c.AbortWithStatusJSON(he.StatusCode, Resp{
		ErrorCode: he.StatusCode,
		Message:   he.Message,
	})
}
