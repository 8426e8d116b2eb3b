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

type DonationHandler struct {
	donationLogic *logic.DonationLogic
}

func NewDonationHandler(db *gorm.DB) *DonationHandler {
	return &DonationHandler{
		donationLogic: logic.NewDonationLogic(db),
	}
}

// CreateDonation 创建捐赠，未登录用户按匿名捐赠处理
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donor := middleware.CurrentUser(c)

	donation := model.DonationModel{
		CampaignId: req.CampaignId,
		Amount:     req.Amount,
		Tip:        req.Tip,
		DonorName:  req.DonorName,
	}

	// 调用logic层创建捐赠
	if err := h.donationLogic.CreateDonation(&donation, donor); err != nil {
		respondLogicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "捐赠成功",
		"donation": ToDonationResponse(&donation),
	})
}

// GetDonations 获取捐赠记录列表
func (h *DonationHandler) GetDonations(c *gin.Context) {
	// 获取查询参数
	campaignId, _ := strconv.ParseInt(c.DefaultQuery("campaign_id", "0"), 10, 64)
	page, pageSize := parsePagination(c, 20)

	// 调用logic层获取捐赠记录
	donations, total, err := h.donationLogic.GetDonations(campaignId, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donations":  ToDonationResponses(donations),
		"pagination": NewPagination(page, pageSize, total),
	})
}

// GetMyDonations 获取当前用户的捐赠记录
func (h *DonationHandler) GetMyDonations(c *gin.Context) {
	user := middleware.CurrentUser(c)

	// 调用logic层获取我的捐赠记录
	donations, err := h.donationLogic.GetMyDonations(user.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": ToDonationResponses(donations)})
}
