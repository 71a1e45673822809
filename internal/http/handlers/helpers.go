package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TamTranZrgz/ecom-nest/internal/http/middleware"
	"github.com/TamTranZrgz/ecom-nest/internal/http/validation"
	"github.com/TamTranZrgz/ecom-nest/internal/shared/apperr"
)

// bindJSON binds and validates, failing the request with field errors on
// bad input. Returns false when the handler should stop.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fields := validation.FromBindError(err, dst)
		middleware.Fail(c, apperr.InvalidErr("Request body is invalid.", fields))
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func paramID(c *gin.Context, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id < 1 {
		middleware.Fail(c, apperr.InvalidErr("Invalid id parameter.", nil))
		return 0, false
	}
	return id, true
}

func totalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
