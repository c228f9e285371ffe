package ginutil

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// QueryInt extracts an integer from query parameters with default value
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// QueryStr extracts a string from query parameters with default value
func QueryStr(c *gin.Context, key, defaultValue string) string {
	value := c.Query(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// QueryList extracts a comma-separated list from a query parameter.
// Empty entries are dropped; returns nil when the parameter is absent.
func QueryList(c *gin.Context, key string) []string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// ParamInt extracts an integer from path parameters
func ParamInt(c *gin.Context, key string) (int, error) {
	valueStr := c.Param(key)
	return strconv.Atoi(valueStr)
}
