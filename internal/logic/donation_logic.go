package logic

import (
	"errors"
	"fmt"

	"github.com/blues/tfs/internal/model"
	"gorm.io/gorm"
)

// DonationLogic 捐赠业务逻辑
type DonationLogic struct {
	db *gorm.DB
}

// NewDonationLogic 创建捐赠业务逻辑
func NewDonationLogic(db *gorm.DB) *DonationLogic {
	return &DonationLogic{db: db}
}

// CreateDonation 创建捐赠记录。
// 捐赠插入与活动筹款总额的累加在同一事务内完成，
// 总额使用数据库侧的原子自增，保证并发捐赠下
// collected_amount 与捐赠明细之和一致。
func (l *DonationLogic) CreateDonation(donation *model.DonationModel, donor *model.UserModel) error {
	// 验证捐赠数据
	if err := l.validateDonation(donation); err != nil {
		return err
	}

	// 关联捐赠人，未登录时按匿名处理
	if donor != nil {
		donation.DonorId = donor.Id
		if donation.DonorName == "" {
			donation.DonorName = donor.Name
		}
	}

	// 检查活动是否存在且可接受捐赠
	var campaign model.CampaignModel
	if err := l.db.First(&campaign, donation.CampaignId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if campaign.Status == model.CampaignStatusCancelled {
		return errors.New("活动已取消，无法接受捐赠")
	}

	// 开始事务
	tx := l.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 创建捐赠记录
	if err := tx.Create(donation).Error; err != nil {
		tx.Rollback()
		return err
	}

	// 原子累加活动筹款总额（小费不计入）
	if err := tx.Model(&campaign).Update("collected_amount", gorm.Expr("collected_amount + ?", donation.Amount)).Error; err != nil {
		tx.Rollback()
		return err
	}

	// 检查是否达到目标金额
	if campaign.CollectedAmount+donation.Amount >= campaign.TargetAmount {
		if err := tx.Model(&campaign).Update("status", model.CampaignStatusCompleted).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		return err
	}

	return nil
}

// GetDonations 获取捐赠记录列表，可按活动过滤
func (l *DonationLogic) GetDonations(campaignId int64, page, pageSize int) ([]model.DonationModel, int64, error) {
	var donations []model.DonationModel
	var total int64

	query := l.db.Model(&model.DonationModel{})
	if campaignId > 0 {
		query = query.Where("campaign_id = ?", campaignId)
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
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, total, nil
}

// GetMyDonations 获取当前用户的捐赠记录
func (l *DonationLogic) GetMyDonations(donorId int64) ([]model.DonationModel, error) {
	var donations []model.DonationModel
	if err := l.db.Where("donor_id = ?", donorId).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("获取我的捐赠记录失败: %w", err)
	}

	return donations, nil
}

// validateDonation 验证捐赠数据
func (l *DonationLogic) validateDonation(donation *model.DonationModel) error {
	if donation.CampaignId == 0 {
		return errors.New("活动ID不能为空")
	}
	if donation.Amount <= 0 {
		return errors.New("捐赠金额必须大于0")
	}
	if donation.Tip < 0 {
		return errors.New("小费金额不能为负数")
	}
	return nil
}
