package logic

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/blues/tfs/internal/model"
	"gorm.io/gorm"
)

// 活动编码字符集与格式
const (
	campaignCodePrefix  = "TF-"
	campaignCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	campaignCodeLength  = 6
)

// CampaignLogic 筹款活动业务逻辑
type CampaignLogic struct {
	db *gorm.DB
}

// NewCampaignLogic 创建筹款活动业务逻辑
func NewCampaignLogic(db *gorm.DB) *CampaignLogic {
	return &CampaignLogic{db: db}
}

// GenerateCampaignCode 生成活动编码，格式 TF-XXXXXX。
// 编码不做预查重，campaign.code 上的唯一索引兜底冲突。
func GenerateCampaignCode() string {
	var b strings.Builder
	b.WriteString(campaignCodePrefix)
	for i := 0; i < campaignCodeLength; i++ {
		b.WriteByte(campaignCodeCharset[rand.Intn(len(campaignCodeCharset))])
	}
	return b.String()
}

// CreateCampaign 创建筹款活动
func (l *CampaignLogic) CreateCampaign(campaign *model.CampaignModel, creator *model.UserModel) error {
	// 验证活动数据
	if err := l.validateCampaign(campaign); err != nil {
		return err
	}

	// 设置默认值
	campaign.Code = GenerateCampaignCode()
	campaign.Status = model.CampaignStatusPending
	campaign.CollectedAmount = 0
	campaign.IsVerified = false
	campaign.CreatorId = creator.Id
	campaign.CreatorName = creator.Name
	if !campaign.StartTime.After(time.Now()) {
		campaign.Status = model.CampaignStatusActive
	}

	// 创建活动
	if err := l.db.Create(campaign).Error; err != nil {
		return err
	}

	return nil
}

// GetCampaigns 获取活动列表
func (l *CampaignLogic) GetCampaigns(status, category string, page, pageSize int) ([]model.CampaignModel, int64, error) {
	var campaigns []model.CampaignModel
	var total int64

	query := l.db.Model(&model.CampaignModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("获取活动列表失败: %w", err)
	}

	// 获取数据
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, 0, fmt.Errorf("获取活动列表失败: %w", err)
	}

	return campaigns, total, nil
}

// GetCampaign 获取活动详情
func (l *CampaignLogic) GetCampaign(id int64) (*model.CampaignModel, error) {
	var campaign model.CampaignModel
	if err := l.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("获取活动详情失败: %w", err)
	}

	return &campaign, nil
}

// GetMyCampaigns 获取当前用户发起的活动
func (l *CampaignLogic) GetMyCampaigns(creatorId int64) ([]model.CampaignModel, error) {
	var campaigns []model.CampaignModel
	if err := l.db.Where("creator_id = ?", creatorId).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("获取我的活动失败: %w", err)
	}

	return campaigns, nil
}

// validateCampaign 验证活动数据
func (l *CampaignLogic) validateCampaign(campaign *model.CampaignModel) error {
	if campaign.Title == "" {
		return errors.New("活动标题不能为空")
	}
	if campaign.TargetAmount <= 0 {
		return errors.New("目标金额必须大于0")
	}
	if campaign.StartTime.After(campaign.EndTime) {
		return errors.New("开始时间不能晚于结束时间")
	}
	if campaign.EndTime.Before(time.Now()) {
		return errors.New("结束时间不能早于当前时间")
	}
	return nil
}
