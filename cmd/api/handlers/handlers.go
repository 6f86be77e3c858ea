// Package handlers wires HTTP endpoints to the service layer. Client
// facing messages live here; services return plain sentinel errors.
package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSONAllowEmpty binds an optional JSON body. An absent or empty
// body leaves the target at its zero value.
func bindJSONAllowEmpty(c *gin.Context, target any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
