package auth

import (
	"testing"
	"time"

	"github.com/blues/tfs/internal/model"
	"github.com/blues/tfs/internal/repository"
	"github.com/stretchr/testify/assert"
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
	require.NoError(t, repository.Migrate(db))
	return db
}

func TestService_TokenRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, "test-secret", "truefund")

	user := &model.UserModel{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(user).Error)

	token, err := service.IssueToken(user, time.Hour)
	require.NoError(t, err)

	got, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.Id, got.Id)
	assert.Equal(t, user.Email, got.Email)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, "test-secret", "truefund")

	user := &model.UserModel{Name: "bob", Email: "bob@example.com"}
	require.NoError(t, db.Create(user).Error)

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with other secret rejected", func(t *testing.T) {
		other := NewService(db, "other-secret", "truefund")
		token, err := other.IssueToken(user, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, err := service.IssueToken(user, -time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		other := NewService(db, "test-secret", "someone-else")
		token, err := other.IssueToken(user, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token for deleted user rejected", func(t *testing.T) {
		ghost := &model.UserModel{Name: "ghost", Email: "ghost@example.com"}
		require.NoError(t, db.Create(ghost).Error)
		token, err := service.IssueToken(ghost, time.Hour)
		require.NoError(t, err)
		require.NoError(t, db.Delete(&model.UserModel{}, ghost.Id).Error)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("bearer prefix stripped", func(t *testing.T) {
		token, err := service.IssueToken(user, time.Hour)
		require.NoError(t, err)

		got, err := service.ValidateToken("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, user.Id, got.Id)
	})
}
