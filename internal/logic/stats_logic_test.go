package logic

import (
	"testing"

	"github.com/blues/tfs/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsLogic_GetPlatformStats(t *testing.T) {
	db := setupTestDB(t)
	statsLogic := NewStatsLogic(db)
	donationLogic := NewDonationLogic(db)
	creator := createTestUser(t, db, "creator", model.UserRoleUser)
	donor := createTestUser(t, db, "donor", model.UserRoleUser)

	active := createTestCampaign(t, db, creator, model.CampaignStatusActive)
	other := createTestCampaign(t, db, creator, model.CampaignStatusActive)

	require.NoError(t, donationLogic.CreateDonation(&model.DonationModel{CampaignId: active.Id, Amount: 1000}, donor))
	require.NoError(t, donationLogic.CreateDonation(&model.DonationModel{CampaignId: active.Id, Amount: 500}, donor))
	require.NoError(t, donationLogic.CreateDonation(&model.DonationModel{CampaignId: other.Id, Amount: 200}, nil))

	stats, err := statsLogic.GetPlatformStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats["totalCampaigns"])
	assert.Equal(t, int64(2), stats["activeCampaigns"])
	assert.Equal(t, int64(1700), stats["totalRaised"])
	assert.Equal(t, int64(3), stats["totalDonations"])
	// 匿名捐赠不计入捐赠人数
	assert.Equal(t, int64(1), stats["totalDonors"])
}
