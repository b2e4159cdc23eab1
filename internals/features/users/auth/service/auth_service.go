package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/users/auth/dto"
	"hrms_backend/internals/features/users/auth/model"
	helper "hrms_backend/internals/helpers"
)

var validateLogin = validator.New()

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Username = strings.TrimSpace(input.Username)

	if err := validateLogin.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin model.AdminModel
	if err := db.Where("admin_username = ?", input.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Uniform answer whether the username or the password was wrong
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := CheckPasswordHash(admin.AdminPassword, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := IssueAccessToken(admin.AdminUsername)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonOK(c, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
