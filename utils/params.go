package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
