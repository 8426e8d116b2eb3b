package logic

import (
	"testing"

	"github.com/blues/tfs/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNgoVerificationLogic_ReviewVerification(t *testing.T) {
	db := setupTestDB(t)
	ngoLogic := NewNgoVerificationLogic(db)

	t.Run("approval promotes user ngo flag", func(t *testing.T) {
		user := createTestUser(t, db, "org-a", model.UserRoleUser)
		verification := &model.NgoVerificationModel{OrganizationName: "仁爱基金会"}
		require.NoError(t, ngoLogic.CreateVerification(verification, user))

		reviewed, err := ngoLogic.ReviewVerification(verification.Id, true, "资料齐全")
		require.NoError(t, err)
		assert.Equal(t, model.NgoVerificationStatusApproved, reviewed.Status)
		assert.Equal(t, "资料齐全", reviewed.ReviewNote)

		var got model.UserModel
		require.NoError(t, db.First(&got, user.Id).Error)
		assert.True(t, got.IsNgo)
	})

	t.Run("rejection leaves user ngo flag untouched", func(t *testing.T) {
		user := createTestUser(t, db, "org-b", model.UserRoleUser)
		verification := &model.NgoVerificationModel{OrganizationName: "测试组织"}
		require.NoError(t, ngoLogic.CreateVerification(verification, user))

		reviewed, err := ngoLogic.ReviewVerification(verification.Id, false, "证照缺失")
		require.NoError(t, err)
		assert.Equal(t, model.NgoVerificationStatusRejected, reviewed.Status)

		var got model.UserModel
		require.NoError(t, db.First(&got, user.Id).Error)
		assert.False(t, got.IsNgo)
	})

	t.Run("reviewing twice fails", func(t *testing.T) {
		user := createTestUser(t, db, "org-c", model.UserRoleUser)
		verification := &model.NgoVerificationModel{OrganizationName: "重复审核组织"}
		require.NoError(t, ngoLogic.CreateVerification(verification, user))

		_, err := ngoLogic.ReviewVerification(verification.Id, true, "")
		require.NoError(t, err)

		_, err = ngoLogic.ReviewVerification(verification.Id, false, "")
		assert.Error(t, err)
	})

	t.Run("missing verification returns not found", func(t *testing.T) {
		_, err := ngoLogic.ReviewVerification(99999, true, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNgoVerificationLogic_CreateVerification(t *testing.T) {
	db := setupTestDB(t)
	ngoLogic := NewNgoVerificationLogic(db)
	user := createTestUser(t, db, "org", model.UserRoleUser)

	t.Run("create verification successfully", func(t *testing.T) {
		verification := &model.NgoVerificationModel{OrganizationName: "希望之光"}
		require.NoError(t, ngoLogic.CreateVerification(verification, user))
		assert.Equal(t, model.NgoVerificationStatusPending, verification.Status)
		assert.Equal(t, user.Id, verification.UserId)
	})

	t.Run("duplicate pending application rejected", func(t *testing.T) {
		verification := &model.NgoVerificationModel{OrganizationName: "希望之光"}
		assert.Error(t, ngoLogic.CreateVerification(verification, user))
	})

	t.Run("reject empty organization name", func(t *testing.T) {
		verification := &model.NgoVerificationModel{}
		assert.Error(t, ngoLogic.CreateVerification(verification, user))
	})
}
