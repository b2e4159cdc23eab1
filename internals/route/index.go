// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "hrms_backend/internals/features/employees/attendance/route"
	employeeRoute "hrms_backend/internals/features/employees/employee/route"
	authRoute "hrms_backend/internals/features/users/auth/route"
	authMiddleware "hrms_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Everything else under /api sits behind the token gate; a rejected
	// token short-circuits before any handler runs.
	log.Println("[INFO] Setting up protected API group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware())
	employeeRoute.EmployeeRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
}
