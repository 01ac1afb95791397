package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// BindNestedOrFlat decodes the request body into obj. Clients may send the
// object wrapped under key (e.g. {"contract": {...}}) or flat ({...}); the
// wrapped form wins when key is present. The body is restored for later reads.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}) error {
	if c.Request.Body == nil {
		return errors.New("empty body")
	}
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var nestedMap map[string]json.RawMessage
	if err := json.Unmarshal(bodyBytes, &nestedMap); err == nil {
		if val, ok := nestedMap[key]; ok {
			return json.Unmarshal(val, obj)
		}
	}

	return json.Unmarshal(bodyBytes, obj)
}
