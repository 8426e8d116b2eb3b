package logic

import (
	"testing"

	"github.com/blues/tfs/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationLogic_CreateDonation(t *testing.T) {
	db := setupTestDB(t)
	donationLogic := NewDonationLogic(db)
	creator := createTestUser(t, db, "creator", model.UserRoleUser)

	t.Run("donation increments campaign ledger", func(t *testing.T) {
		campaign := createTestCampaign(t, db, creator, model.CampaignStatusActive)

		donation := &model.DonationModel{
			CampaignId: campaign.Id,
			Amount:     5000,
			Tip:        500,
		}
		err := donationLogic.CreateDonation(donation, nil)
		require.NoError(t, err)
		assert.NotZero(t, donation.Id)

		var got model.CampaignModel
		require.NoError(t, db.First(&got, campaign.Id).Error)
		assert.Equal(t, int64(5000), got.CollectedAmount)
	})

	t.Run("sequential donations sum correctly", func(t *testing.T) {
		campaign := createTestCampaign(t, db, creator, model.CampaignStatusActive)

		amounts := []int64{1000, 2500, 300}
		var expected int64
		for _, amount := range amounts {
			donation := &model.DonationModel{CampaignId: campaign.Id, Amount: amount}
			require.NoError(t, donationLogic.CreateDonation(donation, nil))
			expected += amount
		}

		var got model.CampaignModel
		require.NoError(t, db.First(&got, campaign.Id).Error)
		assert.Equal(t, expected, got.CollectedAmount)

		// 明细之和与账面总额一致
		var sum int64
		require.NoError(t, db.Model(&model.DonationModel{}).
			Where("campaign_id = ?", campaign.Id).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&sum).Error)
		assert.Equal(t, got.CollectedAmount, sum)
	})

	t.Run("tip not counted into ledger", func(t *testing.T) {
		campaign := createTestCampaign(t, db, creator, model.CampaignStatusActive)

		donation := &model.DonationModel{CampaignId: campaign.Id, Amount: 1000, Tip: 9000}
		require.NoError(t, donationLogic.CreateDonation(donation, nil))

		var got model.CampaignModel
		require.NoError(t, db.First(&got, campaign.Id).Error)
		assert.Equal(t, int64(1000), got.CollectedAmount)
	})

	t.Run("authenticated donor is attributed", func(t *testing.T) {
		campaign := createTestCampaign(t, db, creator, model.CampaignStatusActive)
		donor := createTestUser(t, db, "donor", model.UserRoleUser)

		donation := &model.DonationModel{CampaignId: campaign.Id, Amount: 2000}
		require.NoError(t, donationLogic.CreateDonation(donation, donor))
		assert.Equal(t, donor.Id, donation.DonorId)
		assert.Equal(t, donor.Name, donation.DonorName)
	})

	t.Run("anonymous donation keeps zero donor id", func(t *testing.T) {
		campaign := createTestCampaign(t, db, creator, model.CampaignStatusActive)

		donation := &model.DonationModel{CampaignId: campaign.Id, Amount: 2000, DonorName: "好心人"}
		require.NoError(t, donationLogic.CreateDonation(donation, nil))
		assert.Zero(t, donation.DonorId)
		assert.Equal(t, "好心人", donation.DonorName)
	})

	t.Run("reaching target completes campaign", func(t *testing.T) {
		campaign := createTestCampaign(t, db, creator, model.CampaignStatusActive)

		donation := &model.DonationModel{CampaignId: campaign.Id, Amount: campaign.TargetAmount}
		require.NoError(t, donationLogic.CreateDonation(donation, nil))

		var got model.CampaignModel
		require.NoError(t, db.First(&got, campaign.Id).Error)
		assert.Equal(t, model.CampaignStatusCompleted, got.Status)
	})

	t.Run("reject donation to cancelled campaign", func(t *testing.T) {
		campaign := createTestCampaign(t, db, creator, model.CampaignStatusCancelled)

		donation := &model.DonationModel{CampaignId: campaign.Id, Amount: 1000}
		err := donationLogic.CreateDonation(donation, nil)
		assert.Error(t, err)
	})

	t.Run("missing campaign returns not found", func(t *testing.T) {
		donation := &model.DonationModel{CampaignId: 99999, Amount: 1000}
		err := donationLogic.CreateDonation(donation, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("reject non-positive amount", func(t *testing.T) {
		campaign := createTestCampaign(t, db, creator, model.CampaignStatusActive)

		donation := &model.DonationModel{CampaignId: campaign.Id, Amount: 0}
		assert.Error(t, donationLogic.CreateDonation(donation, nil))

		donation = &model.DonationModel{CampaignId: campaign.Id, Amount: 100, Tip: -1}
		assert.Error(t, donationLogic.CreateDonation(donation, nil))
	})
}

func TestDonationLogic_GetMyDonations(t *testing.T) {
	db := setupTestDB(t)
	donationLogic := NewDonationLogic(db)
	creator := createTestUser(t, db, "creator", model.UserRoleUser)
	donor := createTestUser(t, db, "donor", model.UserRoleUser)
	campaign := createTestCampaign(t, db, creator, model.CampaignStatusActive)

	require.NoError(t, donationLogic.CreateDonation(&model.DonationModel{CampaignId: campaign.Id, Amount: 100}, donor))
	require.NoError(t, donationLogic.CreateDonation(&model.DonationModel{CampaignId: campaign.Id, Amount: 200}, donor))
	require.NoError(t, donationLogic.CreateDonation(&model.DonationModel{CampaignId: campaign.Id, Amount: 300}, nil))

	donations, err := donationLogic.GetMyDonations(donor.Id)
	require.NoError(t, err)
	assert.Len(t, donations, 2)
}

func TestDonationLogic_GetDonations(t *testing.T) {
	db := setupTestDB(t)
	donationLogic := NewDonationLogic(db)
	creator := createTestUser(t, db, "creator", model.UserRoleUser)
	campaignA := createTestCampaign(t, db, creator, model.CampaignStatusActive)
	campaignB := createTestCampaign(t, db, creator, model.CampaignStatusActive)

	for i := 0; i < 3; i++ {
		require.NoError(t, donationLogic.CreateDonation(&model.DonationModel{CampaignId: campaignA.Id, Amount: 100}, nil))
	}
	require.NoError(t, donationLogic.CreateDonation(&model.DonationModel{CampaignId: campaignB.Id, Amount: 100}, nil))

	t.Run("filter by campaign", func(t *testing.T) {
		donations, total, err := donationLogic.GetDonations(campaignA.Id, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, donations, 3)
	})

	t.Run("list all with pagination", func(t *testing.T) {
		donations, total, err := donationLogic.GetDonations(0, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, donations, 2)
	})
}
