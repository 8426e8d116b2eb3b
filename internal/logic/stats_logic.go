package logic

import (
	"fmt"

	"github.com/blues/tfs/internal/model"
	"gorm.io/gorm"
)

// StatsLogic 平台统计业务逻辑
type StatsLogic struct {
	db *gorm.DB
}

// NewStatsLogic 创建统计业务逻辑
func NewStatsLogic(db *gorm.DB) *StatsLogic {
	return &StatsLogic{db: db}
}

// GetPlatformStats 获取平台统计信息
func (l *StatsLogic) GetPlatformStats() (map[string]interface{}, error) {
	// 统计活动总数
	var totalCampaigns int64
	l.db.Model(&model.CampaignModel{}).Count(&totalCampaigns)

	// 统计各状态活动数量
	var activeCampaigns int64
	l.db.Model(&model.CampaignModel{}).
		Where("status = ?", model.CampaignStatusActive).
		Count(&activeCampaigns)

	var completedCampaigns int64
	l.db.Model(&model.CampaignModel{}).
		Where("status = ?", model.CampaignStatusCompleted).
		Count(&completedCampaigns)

	// 统计已认证活动数量
	var verifiedCampaigns int64
	l.db.Model(&model.CampaignModel{}).
		Where("is_verified = ?", true).
		Count(&verifiedCampaigns)

	// 统计筹款总额
	var totalRaised int64
	if err := l.db.Model(&model.CampaignModel{}).
		Select("COALESCE(SUM(collected_amount), 0)").
		Scan(&totalRaised).Error; err != nil {
		return nil, fmt.Errorf("获取筹款总额失败: %w", err)
	}

	// 统计捐赠笔数
	var totalDonations int64
	l.db.Model(&model.DonationModel{}).Count(&totalDonations)

	// 统计捐赠人数（去重，匿名捐赠不计入）
	var totalDonors int64
	l.db.Model(&model.DonationModel{}).
		Where("donor_id > 0").
		Distinct("donor_id").
		Count(&totalDonors)

	return map[string]interface{}{
		"totalCampaigns":     totalCampaigns,
		"activeCampaigns":    activeCampaigns,
		"completedCampaigns": completedCampaigns,
		"verifiedCampaigns":  verifiedCampaigns,
		"totalRaised":        totalRaised,
		"totalDonations":     totalDonations,
		"totalDonors":        totalDonors,
	}, nil
}
