package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope for every endpoint.
type APIResponse struct {
	Result        any      `json:"result"`
	StatusCode    int      `json:"statusCode"`
	IsSuccess     bool     `json:"isSuccess"`
	ErrorMessages []string `json:"errorMessages"`
}

func success(c *gin.Context, status int, result any) {
	c.JSON(status, APIResponse{
		Result:        result,
		StatusCode:    status,
		IsSuccess:     true,
		ErrorMessages: []string{},
	})
}

func failure(c *gin.Context, status int, msgs ...string) {
	c.JSON(status, APIResponse{
		StatusCode:    status,
		IsSuccess:     false,
		ErrorMessages: msgs,
	})
}

func OK(c *gin.Context, result any)      { success(c, http.StatusOK, result) }
func Created(c *gin.Context, result any) { success(c, http.StatusCreated, result) }

func BadRequest(c *gin.Context, msgs ...string)   { failure(c, http.StatusBadRequest, msgs...) }
func Unauthorized(c *gin.Context, msgs ...string) { failure(c, http.StatusUnauthorized, msgs...) }
func Forbidden(c *gin.Context, msgs ...string)    { failure(c, http.StatusForbidden, msgs...) }
func NotFound(c *gin.Context, msgs ...string)     { failure(c, http.StatusNotFound, msgs...) }

// ServerError hides internal fault detail behind a generic message; the caller
// is expected to log the underlying error.
func ServerError(c *gin.Context) {
	failure(c, http.StatusInternalServerError, "something went wrong")
}
