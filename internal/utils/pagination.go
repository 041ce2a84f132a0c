package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ListParams holds offset pagination parameters for list endpoints.
type ListParams struct {
	Skip  int
	Limit int
}

// GetListParams extracts and clamps skip/limit query parameters.
func GetListParams(c *gin.Context) ListParams {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return ListParams{
		Skip:  skip,
		Limit: limit,
	}
}
