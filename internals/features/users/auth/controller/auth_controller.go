package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	flatModel "societyhub_backend/internals/features/society/flats/model"
	"societyhub_backend/internals/features/users/auth/dto"
	"societyhub_backend/internals/features/users/auth/service"
	userDTO "societyhub_backend/internals/features/users/user/dto"
	helper "societyhub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

// Register creates an account. Admin only; residents must be bound to a flat.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session is missing a user")
	}

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var flatID *uuid.UUID
	if req.FlatID != nil {
		parsed, err := uuid.Parse(*req.FlatID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid flat id")
		}
		var count int64
		if err := ctrl.DB.Model(&flatModel.FlatModel{}).
			Where("flat_id = ?", parsed).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check flat")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Flat not found")
		}
		flatID = &parsed
	}
	if req.Role == "resident" && flatID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Residents must be linked to a flat")
	}

	user, err := service.Register(ctrl.DB, service.RegisterInput{
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		FlatID:   flatID,
	}, actorID)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUserName) {
			return helper.JsonError(c, fiber.StatusConflict, "User name already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.JsonCreated(c, "User registered", userDTO.ToUserDTO(*user))
}

// Login exchanges credentials for an access and refresh token pair.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, pair, err := service.Login(ctrl.DB, req.UserName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user name or password")
		case errors.Is(err, service.ErrAccountDisabled):
			return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
		}
	}

	return helper.JsonOK(c, "Signed in", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userDTO.ToUserDTO(*user),
	})
}

// Refresh rotates a refresh token into a new token pair.
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, pair, err := service.Refresh(ctrl.DB, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshInvalid):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid or expired")
		case errors.Is(err, service.ErrAccountDisabled):
			return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh session")
		}
	}

	return helper.JsonOK(c, "Session refreshed", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userDTO.ToUserDTO(*user),
	})
}

// Logout revokes the presented refresh token.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := service.Logout(ctrl.DB, req.RefreshToken); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign out")
	}
	return helper.JsonOK(c, "Signed out", nil)
}

// ChangePassword lets an authenticated user rotate their own password.
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session is missing a user")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := service.ChangePassword(ctrl.DB, userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongOldPassword) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Old password does not match")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}

	return helper.JsonOK(c, "Password changed", nil)
}
