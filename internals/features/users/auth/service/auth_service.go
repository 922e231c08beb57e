package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"societyhub_backend/internals/configs"
	activityService "societyhub_backend/internals/features/activity/logs/service"
	authModel "societyhub_backend/internals/features/users/auth/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrDuplicateUserName  = errors.New("user name already taken")
	ErrRefreshInvalid     = errors.New("refresh token invalid or expired")
	ErrWrongOldPassword   = errors.New("old password does not match")
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type RegisterInput struct {
	UserName string
	FullName string
	Email    string
	Password string
	Role     string
	FlatID   *uuid.UUID
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Register creates an account with a bcrypt-hashed password. Only admins reach
// this path; the route layer enforces that.
func Register(db *gorm.DB, in RegisterInput, actorID uuid.UUID) (*userModel.UserModel, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserName:     in.UserName,
		UserFullName: in.FullName,
		UserEmail:    in.Email,
		UserPassword: string(hashed),
		UserRole:     in.Role,
		UserFlatID:   in.FlatID,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUserName
		}
		return nil, err
	}

	_ = activityService.Record(db, actorID, activityService.ActionUserRegister,
		"Registered account "+user.UserName,
		map[string]any{"new_user_id": user.UserID.String(), "role": user.UserRole})

	return &user, nil
}

// Login verifies the password and issues an access plus refresh token pair.
func Login(db *gorm.DB, userName, password string) (*userModel.UserModel, *TokenPair, error) {
	var user userModel.UserModel
	if err := db.First(&user, "user_name = ?", userName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !user.UserIsActive {
		return nil, nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := issueTokenPair(db, &user)
	if err != nil {
		return nil, nil, err
	}

	_ = activityService.Record(db, user.UserID, activityService.ActionUserLogin,
		"Signed in as "+user.UserName, nil)

	return &user, pair, nil
}

// Refresh rotates the refresh token: the presented one is revoked and a fresh
// pair is issued. An expired, revoked, or unknown token is rejected.
func Refresh(db *gorm.DB, refreshToken string) (*userModel.UserModel, *TokenPair, error) {
	hash := computeRefreshHash(refreshToken)

	var row authModel.RefreshTokenModel
	if err := db.First(&row, "refresh_token_hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRefreshInvalid
		}
		return nil, nil, err
	}
	if row.RefreshTokenRevokedAt != nil || time.Now().After(row.RefreshTokenExpiresAt) {
		return nil, nil, ErrRefreshInvalid
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", row.RefreshTokenUserID).Error; err != nil {
		return nil, nil, ErrRefreshInvalid
	}
	if !user.UserIsActive {
		return nil, nil, ErrAccountDisabled
	}

	now := time.Now()
	if err := db.Model(&row).Update("refresh_token_revoked_at", &now).Error; err != nil {
		return nil, nil, err
	}

	pair, err := issueTokenPair(db, &user)
	if err != nil {
		return nil, nil, err
	}
	return &user, pair, nil
}

// Logout revokes the presented refresh token. Unknown tokens are a no-op.
func Logout(db *gorm.DB, refreshToken string) error {
	hash := computeRefreshHash(refreshToken)
	now := time.Now()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL", hash).
		Update("refresh_token_revoked_at", &now).Error
}

// ChangePassword swaps the bcrypt hash after checking the old password, then
// revokes every live refresh token for the user.
func ChangePassword(db *gorm.DB, userID uuid.UUID, oldPassword, newPassword string) error {
	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(oldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("user_password", string(hashed)).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&authModel.RefreshTokenModel{}).
			Where("refresh_token_user_id = ? AND refresh_token_revoked_at IS NULL", userID).
			Update("refresh_token_revoked_at", &now).Error
	})
}

// =======================
// Token plumbing
// =======================

func issueTokenPair(db *gorm.DB, user *userModel.UserModel) (*TokenPair, error) {
	access, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	refresh, err := randomToken()
	if err != nil {
		return nil, err
	}

	row := authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      computeRefreshHash(refresh),
		RefreshTokenExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func signAccessToken(user *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"role":      user.UserRole,
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	if user.UserFlatID != nil {
		claims["flat_id"] = user.UserFlatID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func computeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
