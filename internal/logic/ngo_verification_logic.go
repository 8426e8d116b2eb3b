package logic

import (
	"errors"

	"github.com/blues/tfs/internal/model"
	"gorm.io/gorm"
)

// NgoVerificationLogic NGO认证业务逻辑
type NgoVerificationLogic struct {
	db *gorm.DB
}

// NewNgoVerificationLogic 创建NGO认证业务逻辑
func NewNgoVerificationLogic(db *gorm.DB) *NgoVerificationLogic {
	return &NgoVerificationLogic{db: db}
}

// CreateVerification 提交NGO认证申请
func (l *NgoVerificationLogic) CreateVerification(verification *model.NgoVerificationModel, user *model.UserModel) error {
	if verification.OrganizationName == "" {
		return errors.New("组织名称不能为空")
	}

	// 同一用户只允许存在一条待审核申请
	var pending int64
	if err := l.db.Model(&model.NgoVerificationModel{}).
		Where("user_id = ? AND status = ?", user.Id, model.NgoVerificationStatusPending).
		Count(&pending).Error; err != nil {
		return err
	}
	if pending > 0 {
		return errors.New("已存在待审核的认证申请")
	}

	verification.UserId = user.Id
	verification.Status = model.NgoVerificationStatusPending

	if err := l.db.Create(verification).Error; err != nil {
		return err
	}

	return nil
}

// GetMyVerifications 获取当前用户的认证申请
func (l *NgoVerificationLogic) GetMyVerifications(userId int64) ([]model.NgoVerificationModel, error) {
	var verifications []model.NgoVerificationModel
	if err := l.db.Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&verifications).Error; err != nil {
		return nil, err
	}

	return verifications, nil
}

// GetVerifications 获取认证申请列表（管理员），可按状态过滤
func (l *NgoVerificationLogic) GetVerifications(status string, page, pageSize int) ([]model.NgoVerificationModel, int64, error) {
	var verifications []model.NgoVerificationModel
	var total int64

	query := l.db.Model(&model.NgoVerificationModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 获取数据
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&verifications).Error; err != nil {
		return nil, 0, err
	}

	return verifications, total, nil
}

// ReviewVerification 审核认证申请（管理员）。
// 通过时在同一事务内更新申请状态并提升用户的NGO标记，
// 避免两次独立写入在部分失败时留下不一致状态。
func (l *NgoVerificationLogic) ReviewVerification(id int64, approve bool, note string) (*model.NgoVerificationModel, error) {
	var verification model.NgoVerificationModel
	if err := l.db.First(&verification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if verification.Status != model.NgoVerificationStatusPending {
		return nil, errors.New("该申请已审核完成")
	}

	newStatus := model.NgoVerificationStatusRejected
	if approve {
		newStatus = model.NgoVerificationStatusApproved
	}

	// 开始事务
	tx := l.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 更新申请状态
	if err := tx.Model(&verification).Updates(map[string]interface{}{
		"status":      newStatus,
		"review_note": note,
	}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// 审核通过时提升用户的NGO标记
	if approve {
		if err := tx.Model(&model.UserModel{}).
			Where("id = ?", verification.UserId).
			Update("is_ngo", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	verification.Status = newStatus
	verification.ReviewNote = note
	return &verification, nil
}
