package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/tfs/internal/logic"
	"github.com/blues/tfs/internal/middleware"
	"github.com/blues/tfs/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CampaignHandler struct {
	campaignLogic *logic.CampaignLogic
}

func NewCampaignHandler(db *gorm.DB) *CampaignHandler {
	return &CampaignHandler{
		campaignLogic: logic.NewCampaignLogic(db),
	}
}

// CreateCampaign 创建筹款活动
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator := middleware.CurrentUser(c)

	campaign := model.CampaignModel{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Category:     req.Category,
		TargetAmount: req.TargetAmount,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}

	// 调用logic层创建活动
	if err := h.campaignLogic.CreateCampaign(&campaign, creator); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "活动创建成功",
		"campaign": ToCampaignResponse(&campaign),
	})
}

// GetCampaigns 获取活动列表
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	// 获取查询参数
	status := c.Query("status")
	category := c.Query("category")
	page, pageSize := parsePagination(c, 10)

	// 调用logic层获取活动列表
	campaigns, total, err := h.campaignLogic.GetCampaigns(status, category, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns":  ToCampaignResponses(campaigns),
		"pagination": NewPagination(page, pageSize, total),
	})
}

// GetCampaign 获取单个活动详情
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的活动ID"})
		return
	}

	// 调用logic层获取活动详情
	campaign, err := h.campaignLogic.GetCampaign(id)
	if err != nil {
		respondLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": ToCampaignResponse(campaign)})
}

// GetMyCampaigns 获取当前用户发起的活动
func (h *CampaignHandler) GetMyCampaigns(c *gin.Context) {
	user := middleware.CurrentUser(c)

	// 调用logic层获取我的活动
	campaigns, err := h.campaignLogic.GetMyCampaigns(user.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": ToCampaignResponses(campaigns)})
}
