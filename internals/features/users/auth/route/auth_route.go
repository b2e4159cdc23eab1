package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/users/auth/controller"
)

// AuthRoutes is public: login is the one endpoint outside the auth gate.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", authCtrl.Login)
}
