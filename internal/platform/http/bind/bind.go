// Package bind decodes request bodies for the JSON endpoints.
package bind

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ErrNotObject is returned when the body is valid JSON but not an object,
// e.g. null, an array or a bare string.
var ErrNotObject = errors.New("request body is not a JSON object")

// JSONObject reads the body and decodes it into obj. Only a JSON object is
// accepted; anything else, including an empty body, is an error.
func JSONObject(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotObject
	}

	if err := binding.JSON.BindBody(trimmed, obj); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	return nil
}
