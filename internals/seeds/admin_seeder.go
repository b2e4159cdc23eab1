package seeds

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	adminModel "hrms_backend/internals/features/users/auth/model"
	authService "hrms_backend/internals/features/users/auth/service"
)

// EnsureDefaultAdmin provisions the bootstrap identity once. It only runs
// when the admins table is empty, so operator-created accounts are never
// touched.
func EnsureDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&adminModel.AdminModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := configs.GetEnv("DEFAULT_ADMIN_USERNAME", "admin")
	password := configs.GetEnv("DEFAULT_ADMIN_PASSWORD", "admin123")

	hash, err := authService.HashPassword(password)
	if err != nil {
		return err
	}

	admin := adminModel.AdminModel{
		AdminID:       uuid.NewString(),
		AdminUsername: username,
		AdminPassword: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Default admin %q created", username)
	return nil
}
