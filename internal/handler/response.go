package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blues/tfs/internal/logic"
	"github.com/gin-gonic/gin"
)

// respondLogicError 将logic层错误映射为HTTP状态码
func respondLogicError(c *gin.Context, err error) {
	if errors.Is(err, logic.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// parsePagination 解析分页参数，非法值回退到默认值
func parsePagination(c *gin.Context, defaultPageSize int) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
