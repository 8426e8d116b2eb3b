package scheduler

import (
	"time"

	"github.com/blues/tfs/internal/config"
	"github.com/blues/tfs/internal/logger"
	"github.com/blues/tfs/internal/model"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// CampaignStatusJob 活动状态更新任务
type CampaignStatusJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewCampaignStatusJob 创建活动状态更新任务
func NewCampaignStatusJob(db *gorm.DB, cfg *config.Config) *CampaignStatusJob {
	return &CampaignStatusJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *CampaignStatusJob) GetName() string {
	return "campaign_status_updater"
}

// GetSchedule 获取调度配置
func (j *CampaignStatusJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *CampaignStatusJob) Execute() {
	now := time.Now()

	// 查找需要更新状态的活动
	var campaigns []model.CampaignModel
	err := j.db.Where("status IN ?", []model.CampaignStatus{
		model.CampaignStatusPending,
		model.CampaignStatusActive,
	}).Find(&campaigns).Error

	if err != nil {
		logger.Error("Failed to fetch campaigns: %v", err)
		return
	}

	updatedCount := 0

	for _, campaign := range campaigns {
		var newStatus model.CampaignStatus
		shouldUpdate := false

		switch campaign.Status {
		case model.CampaignStatusPending:
			// 检查是否到了开始时间
			if now.After(campaign.StartTime) {
				newStatus = model.CampaignStatusActive
				shouldUpdate = true
			}

		case model.CampaignStatusActive:
			// 检查是否到了结束时间或达到目标金额
			if now.After(campaign.EndTime) || campaign.CollectedAmount >= campaign.TargetAmount {
				newStatus = model.CampaignStatusCompleted
				shouldUpdate = true
			}
		}

		if shouldUpdate {
			if err := j.db.Model(&campaign).Update("status", newStatus).Error; err != nil {
				logger.Error("Failed to update campaign %d status: %v", campaign.Id, err)
				continue
			}

			logger.Info("Updated campaign %d status from %s to %s",
				campaign.Id, campaign.Status, newStatus)
			updatedCount++
		}
	}

	if updatedCount > 0 {
		logger.Info("Campaign status update completed. Updated %d campaigns", updatedCount)
	}
}
