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

type NgoVerificationHandler struct {
	ngoLogic *logic.NgoVerificationLogic
}

func NewNgoVerificationHandler(db *gorm.DB) *NgoVerificationHandler {
	return &NgoVerificationHandler{
		ngoLogic: logic.NewNgoVerificationLogic(db),
	}
}

// CreateVerification 提交NGO认证申请
func (h *NgoVerificationHandler) CreateVerification(c *gin.Context) {
	var req CreateNgoVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	verification := model.NgoVerificationModel{
		OrganizationName: req.OrganizationName,
		RegistrationNo:   req.RegistrationNo,
		ContactEmail:     req.ContactEmail,
		DocumentURL:      req.DocumentURL,
	}

	// 调用logic层提交申请
	if err := h.ngoLogic.CreateVerification(&verification, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "认证申请提交成功",
		"verification": verification,
	})
}

// GetMyVerifications 获取当前用户的认证申请
func (h *NgoVerificationHandler) GetMyVerifications(c *gin.Context) {
	user := middleware.CurrentUser(c)

	// 调用logic层获取我的申请
	verifications, err := h.ngoLogic.GetMyVerifications(user.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"verifications": verifications})
}

// GetVerifications 获取认证申请列表（管理员）
func (h *NgoVerificationHandler) GetVerifications(c *gin.Context) {
	// 获取查询参数
	status := c.Query("status")
	page, pageSize := parsePagination(c, 20)

	// 调用logic层获取申请列表
	verifications, total, err := h.ngoLogic.GetVerifications(status, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verifications": verifications,
		"pagination":    NewPagination(page, pageSize, total),
	})
}

// ReviewVerification 审核NGO认证申请（管理员）
func (h *NgoVerificationHandler) ReviewVerification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的申请ID"})
		return
	}

	var req ReviewNgoVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 调用logic层审核申请
	verification, err := h.ngoLogic.ReviewVerification(id, req.Approve, req.Note)
	if err != nil {
		respondLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "审核完成",
		"verification": verification,
	})
}
