package handler

import (
	"net/http"

	"github.com/blues/tfs/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsHandler struct {
	statsLogic *logic.StatsLogic
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		statsLogic: logic.NewStatsLogic(db),
	}
}

// GetPlatformStats 获取平台统计信息
func (h *StatsHandler) GetPlatformStats(c *gin.Context) {
	// 调用logic层获取统计信息
	stats, err := h.statsLogic.GetPlatformStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
