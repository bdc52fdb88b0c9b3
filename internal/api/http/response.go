package apiHttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorStruct struct {
	Error string `json:"error"`
} // @name ErrorStruct

// internalErrorResponse hides the underlying failure from the client; the
// driver message is only ever logged server-side.
func internalErrorResponse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorStruct{Error: "internal server error"})
}

func invalidBodyResponse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorStruct{Error: "invalid request body"})
}
