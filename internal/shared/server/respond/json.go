package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope wraps a success payload under the data key.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// Data writes a JSON response with the payload wrapped under "data".
func Data(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, envelope{Success: true, Data: payload})
}

// OK writes a 200 OK response with the payload wrapped under "data".
func OK(c *gin.Context, payload interface{}) {
	Data(c, http.StatusOK, payload)
}

// Created writes a 201 Created response with the payload wrapped under "data".
func Created(c *gin.Context, payload interface{}) {
	Data(c, http.StatusCreated, payload)
}

// JSON writes a bare JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}
