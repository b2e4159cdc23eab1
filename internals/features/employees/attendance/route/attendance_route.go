package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/employees/attendance/controller"
)

// AttendanceRoutes expects a router that already carries the auth gate.
func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	attendanceCtrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Get("/", attendanceCtrl.ListAttendance)
	attendance.Get("/dashboard", attendanceCtrl.Dashboard)
	attendance.Post("/", attendanceCtrl.MarkAttendance)
}
