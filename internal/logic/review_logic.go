package logic

import (
	"errors"
	"fmt"

	"github.com/blues/tfs/internal/model"
	"gorm.io/gorm"
)

// ReviewLogic 平台评价业务逻辑
type ReviewLogic struct {
	db *gorm.DB
}

// NewReviewLogic 创建评价业务逻辑
func NewReviewLogic(db *gorm.DB) *ReviewLogic {
	return &ReviewLogic{db: db}
}

// CreateReview 创建评价，未登录用户按匿名处理
func (l *ReviewLogic) CreateReview(review *model.ReviewModel, user *model.UserModel) error {
	// 验证评价数据
	if err := l.validateReview(review); err != nil {
		return err
	}

	if user != nil {
		review.UserId = user.Id
		if review.Name == "" {
			review.Name = user.Name
		}
	}
	review.Approved = true

	if err := l.db.Create(review).Error; err != nil {
		return err
	}

	return nil
}

// GetReviews 获取展示中的评价列表
func (l *ReviewLogic) GetReviews(page, pageSize int) ([]model.ReviewModel, int64, error) {
	var reviews []model.ReviewModel
	var total int64

	query := l.db.Model(&model.ReviewModel{}).Where("approved = ?", true)

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("获取评价列表失败: %w", err)
	}

	// 获取数据
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("获取评价列表失败: %w", err)
	}

	return reviews, total, nil
}

// validateReview 验证评价数据
func (l *ReviewLogic) validateReview(review *model.ReviewModel) error {
	if review.Rating < 1 || review.Rating > 5 {
		return errors.New("评分必须在1到5之间")
	}
	return nil
}
