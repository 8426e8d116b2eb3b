package logic

import (
	"errors"

	"github.com/blues/tfs/internal/model"
	"gorm.io/gorm"
)

// TicketLogic 工单业务逻辑
type TicketLogic struct {
	db *gorm.DB
}

// NewTicketLogic 创建工单业务逻辑
func NewTicketLogic(db *gorm.DB) *TicketLogic {
	return &TicketLogic{db: db}
}

// CreateTicket 创建工单
func (l *TicketLogic) CreateTicket(ticket *model.TicketModel, user *model.UserModel) error {
	if ticket.Subject == "" {
		return errors.New("工单标题不能为空")
	}
	if ticket.Message == "" {
		return errors.New("工单内容不能为空")
	}

	ticket.UserId = user.Id
	ticket.Status = model.TicketStatusOpen

	if err := l.db.Create(ticket).Error; err != nil {
		return err
	}

	return nil
}

// GetMyTickets 获取当前用户的工单
func (l *TicketLogic) GetMyTickets(userId int64) ([]model.TicketModel, error) {
	var tickets []model.TicketModel
	if err := l.db.Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}

	return tickets, nil
}

// GetTickets 获取所有工单（管理员），可按状态过滤
func (l *TicketLogic) GetTickets(status string, page, pageSize int) ([]model.TicketModel, int64, error) {
	var tickets []model.TicketModel
	var total int64

	query := l.db.Model(&model.TicketModel{})
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
		Find(&tickets).Error; err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

// GetTicket 获取工单详情
func (l *TicketLogic) GetTicket(id int64) (*model.TicketModel, error) {
	var ticket model.TicketModel
	if err := l.db.First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

// UpdateTicket 更新工单状态与回复（管理员）
func (l *TicketLogic) UpdateTicket(id int64, updates map[string]interface{}) (*model.TicketModel, error) {
	// 检查工单是否存在
	ticket, err := l.GetTicket(id)
	if err != nil {
		return nil, err
	}

	// 只允许更新特定字段
	allowedFields := []string{"status", "admin_reply"}
	for key := range updates {
		if !containsField(allowedFields, key) {
			delete(updates, key)
		}
	}

	if len(updates) == 0 {
		return nil, errors.New("没有要更新的字段")
	}

	if status, ok := updates["status"].(string); ok {
		if !validTicketStatus(model.TicketStatus(status)) {
			return nil, errors.New("无效的工单状态")
		}
	}

	if err := l.db.Model(ticket).Updates(updates).Error; err != nil {
		return nil, err
	}

	return ticket, nil
}

// validTicketStatus 校验工单状态取值
func validTicketStatus(status model.TicketStatus) bool {
	switch status {
	case model.TicketStatusOpen, model.TicketStatusInProgress, model.TicketStatusClosed:
		return true
	}
	return false
}

// containsField 判断字段是否在允许列表中
func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
