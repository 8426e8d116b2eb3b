package model

import (
	"time"
)

// ReviewModel 平台评价模型
type ReviewModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 评价人，匿名评价时 UserId 为 0
	UserId int64  `json:"user_id" gorm:"index"`
	Name   string `json:"name"`

	// 评价内容
	Rating  int    `json:"rating" gorm:"not null" binding:"required,min=1,max=5"`
	Comment string `json:"comment" gorm:"type:text"`

	// 是否展示
	Approved bool `json:"approved" gorm:"default:true"`
}

// TableName 自定义表名
func (ReviewModel) TableName() string {
	return "review"
}
