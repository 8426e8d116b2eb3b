package model

import (
	"time"
)

// NgoVerificationModel NGO认证申请模型
type NgoVerificationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId int64 `json:"user_id" gorm:"not null;index"`

	// 组织信息
	OrganizationName string `json:"organization_name" gorm:"not null" binding:"required"`
	RegistrationNo   string `json:"registration_no"`
	ContactEmail     string `json:"contact_email"`
	DocumentURL      string `json:"document_url"`

	// 审核状态
	Status     NgoVerificationStatus `json:"status" gorm:"default:'pending'"`
	ReviewNote string                `json:"review_note" gorm:"type:text"`
}

// NgoVerificationStatus NGO认证状态
type NgoVerificationStatus string

const (
	NgoVerificationStatusPending  NgoVerificationStatus = "pending"  // 待审核
	NgoVerificationStatusApproved NgoVerificationStatus = "approved" // 已通过
	NgoVerificationStatusRejected NgoVerificationStatus = "rejected" // 已驳回
)

// TableName 自定义表名
func (NgoVerificationModel) TableName() string {
	return "ngo_verification"
}
