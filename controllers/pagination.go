package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPerPage = 10

func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPerPage)))
	if limit < 1 || limit > 100 {
		limit = defaultPerPage
	}
	return page, limit
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
