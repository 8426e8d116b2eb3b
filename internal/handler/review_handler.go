package handler

import (
	"net/http"

	"github.com/blues/tfs/internal/logic"
	"github.com/blues/tfs/internal/middleware"
	"github.com/blues/tfs/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	reviewLogic *logic.ReviewLogic
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{
		reviewLogic: logic.NewReviewLogic(db),
	}
}

// CreateReview 创建评价
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	review := model.ReviewModel{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	// 调用logic层创建评价
	if err := h.reviewLogic.CreateReview(&review, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "评价提交成功",
		"review":  review,
	})
}

// GetReviews 获取评价列表
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	// 分页参数
	page, pageSize := parsePagination(c, 20)

	// 调用logic层获取评价列表
	reviews, total, err := h.reviewLogic.GetReviews(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":    reviews,
		"pagination": NewPagination(page, pageSize, total),
	})
}
