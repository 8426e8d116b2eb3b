package model

import (
	"time"
)

// UserModel 用户模型
type UserModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"uniqueIndex;not null" binding:"required,email"`

	// 角色与认证状态
	Role  UserRole `json:"role" gorm:"default:'user'"`
	IsNgo bool     `json:"is_ngo" gorm:"default:false"`
}

// UserRole 用户角色
type UserRole string

const (
	UserRoleUser  UserRole = "user"  // 普通用户
	UserRoleAdmin UserRole = "admin" // 管理员
)

// TableName 自定义表名
func (UserModel) TableName() string {
	return "user"
}
