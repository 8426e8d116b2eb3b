package logic

import (
	"testing"
	"time"

	"github.com/blues/tfs/internal/model"
	"github.com/blues/tfs/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	err = repository.Migrate(db)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.UserModel {
	user := &model.UserModel{
		Name:  name,
		Email: name + "@example.com",
		Role:  role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCampaign(t *testing.T, db *gorm.DB, creator *model.UserModel, status model.CampaignStatus) *model.CampaignModel {
	campaign := &model.CampaignModel{
		Code:         GenerateCampaignCode(),
		Title:        "测试活动",
		TargetAmount: 100000,
		StartTime:    time.Now().Add(-time.Hour),
		EndTime:      time.Now().Add(24 * time.Hour),
		Status:       status,
		CreatorId:    creator.Id,
		CreatorName:  creator.Name,
	}
	require.NoError(t, db.Create(campaign).Error)
	return campaign
}
