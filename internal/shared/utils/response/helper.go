package response

import "github.com/gin-gonic/gin"

// RespondMessage writes a {"message": ...} body.
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// RespondError writes a {"message": ..., "error": ...} body.
func RespondError(c *gin.Context, code int, message string, err error) {
	body := MessageResponse{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	c.JSON(code, body)
}
