package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultCount is the number of items returned by report endpoints when no count is given.
	DefaultCount = 5
	// MaxCount caps the count query parameter.
	MaxCount = 100
)

// ParseCount parses the "count" query parameter used by report endpoints.
// It defaults to DefaultCount and must be between 1 and MaxCount.
func ParseCount(c *gin.Context) (int, error) {
	countStr := c.DefaultQuery("count", strconv.Itoa(DefaultCount))
	count, err := strconv.Atoi(countStr)
	if err != nil || count < 1 || count > MaxCount {
		return 0, fmt.Errorf("invalid count parameter: must be between 1 and %d", MaxCount)
	}
	return count, nil
}
