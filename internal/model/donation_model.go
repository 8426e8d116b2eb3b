package model

import (
	"time"
)

// DonationModel 捐赠记录模型
type DonationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64 `json:"campaign_id" gorm:"not null;index"`

	// 金额信息（单位：分），小费不计入活动筹款总额
	Amount int64 `json:"amount" gorm:"not null"`
	Tip    int64 `json:"tip" gorm:"default:0"`

	// 捐赠人信息，匿名捐赠时 DonorId 为 0
	DonorId   int64  `json:"donor_id" gorm:"index"`
	DonorName string `json:"donor_name"`
}

// TableName 自定义表名
func (DonationModel) TableName() string {
	return "donation"
}
