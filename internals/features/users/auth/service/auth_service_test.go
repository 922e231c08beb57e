package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"societyhub_backend/internals/configs"
	activityModel "societyhub_backend/internals/features/activity/logs/model"
	authModel "societyhub_backend/internals/features/users/auth/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&activityModel.ActivityLogModel{},
	))
	return db
}

func registerUser(t *testing.T, db *gorm.DB, name, password, role string) *userModel.UserModel {
	u, err := Register(db, RegisterInput{
		UserName: name,
		FullName: "Test " + name,
		Password: password,
		Role:     role,
	}, uuid.New())
	require.NoError(t, err)
	return u
}

func TestRegister_HashesPasswordAndRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)

	u := registerUser(t, db, "secretary", "sup3r-secret", "admin")
	assert.NotEqual(t, "sup3r-secret", u.UserPassword)

	_, err := Register(db, RegisterInput{
		UserName: "secretary",
		FullName: "Another Secretary",
		Password: "whatever1",
		Role:     "admin",
	}, uuid.New())
	assert.ErrorIs(t, err, ErrDuplicateUserName)
}

func TestLogin_IssuesTokenPair(t *testing.T) {
	db := setupTestDB(t)
	registerUser(t, db, "gatekeeper", "open-sesame1", "security")

	user, pair, err := Login(db, "gatekeeper", "open-sesame1")
	require.NoError(t, err)
	assert.Equal(t, "gatekeeper", user.UserName)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	var count int64
	require.NoError(t, db.Model(&authModel.RefreshTokenModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, _, err = Login(db, "gatekeeper", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = Login(db, "nobody", "open-sesame1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	db := setupTestDB(t)
	u := registerUser(t, db, "dormant", "open-sesame1", "resident")
	require.NoError(t, db.Model(u).Update("user_is_active", false).Error)

	_, _, err := Login(db, "dormant", "open-sesame1")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestRefresh_RotatesToken(t *testing.T) {
	db := setupTestDB(t)
	registerUser(t, db, "rotator", "open-sesame1", "resident")

	_, pair, err := Login(db, "rotator", "open-sesame1")
	require.NoError(t, err)

	_, next, err := Refresh(db, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// The old refresh token is revoked by the rotation.
	_, _, err = Refresh(db, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshInvalid)

	// The fresh one still works.
	_, _, err = Refresh(db, next.RefreshToken)
	require.NoError(t, err)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	registerUser(t, db, "latecomer", "open-sesame1", "resident")

	_, pair, err := Login(db, "latecomer", "open-sesame1")
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_token_revoked_at IS NULL").
		Update("refresh_token_expires_at", past).Error)

	_, _, err = Refresh(db, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshInvalid)
}

func TestLogout_RevokesToken(t *testing.T) {
	db := setupTestDB(t)
	registerUser(t, db, "leaver", "open-sesame1", "resident")

	_, pair, err := Login(db, "leaver", "open-sesame1")
	require.NoError(t, err)

	require.NoError(t, Logout(db, pair.RefreshToken))

	_, _, err = Refresh(db, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshInvalid)

	// Logging out twice is harmless.
	require.NoError(t, Logout(db, pair.RefreshToken))
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	u := registerUser(t, db, "renewer", "old-secret-1", "resident")

	_, pair, err := Login(db, "renewer", "old-secret-1")
	require.NoError(t, err)

	err = ChangePassword(db, u.UserID, "wrong-old", "new-secret-1")
	assert.ErrorIs(t, err, ErrWrongOldPassword)

	require.NoError(t, ChangePassword(db, u.UserID, "old-secret-1", "new-secret-1"))

	_, _, err = Login(db, "renewer", "old-secret-1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = Login(db, "renewer", "new-secret-1")
	require.NoError(t, err)

	// Every pre-change refresh token is revoked.
	_, _, err = Refresh(db, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshInvalid)
}
