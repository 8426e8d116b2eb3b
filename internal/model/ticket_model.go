package model

import (
	"time"
)

// TicketModel 工单模型
type TicketModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId int64 `json:"user_id" gorm:"not null;index"`

	// 工单内容
	Subject string `json:"subject" gorm:"not null" binding:"required"`
	Message string `json:"message" gorm:"type:text" binding:"required"`

	// 处理状态
	Status     TicketStatus `json:"status" gorm:"default:'open'"`
	AdminReply string       `json:"admin_reply" gorm:"type:text"`
}

// TicketStatus 工单状态
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"        // 待处理
	TicketStatusInProgress TicketStatus = "in_progress" // 处理中
	TicketStatusClosed     TicketStatus = "closed"      // 已关闭
)

// TableName 自定义表名
func (TicketModel) TableName() string {
	return "ticket"
}
