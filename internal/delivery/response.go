package delivery

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type MessageBody struct {
	Message string `json:"message"`
}

type ErrorBody struct {
	Error string `json:"error"`
}

const (
	msgInternalError  = "Internal Server Error"
	msgInvalidBody    = "Invalid request body"
	msgNotRegistered  = "Username not registered. Please sign up."
	msgBadPassword    = "Incorrect password."
	msgBadOldPassword = "Incorrect old password."
)

func SuccessResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// bindRequest binds a JSON or form body. An empty body binds as an empty
// request, leaving every field unset.
func bindRequest(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// blankFormField reports whether a form body carries key with an empty value.
// gin binds such a value into a number as zero.
func blankFormField(c *gin.Context, key string) bool {
	if c.ContentType() == binding.MIMEJSON {
		return false
	}
	value, ok := c.GetPostForm(key)
	return ok && value == ""
}
