package model

import (
	"time"
)

// HospitalVerificationModel 医院邮箱认证模型
type HospitalVerificationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64 `json:"campaign_id" gorm:"not null;index"`

	// 认证邮箱与令牌
	HospitalEmail string `json:"hospital_email" gorm:"not null" binding:"required,email"`
	Token         string `json:"-" gorm:"uniqueIndex;not null"`

	// 认证状态
	Verified  bool      `json:"verified" gorm:"default:false"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName 自定义表名
func (HospitalVerificationModel) TableName() string {
	return "hospital_verification"
}
