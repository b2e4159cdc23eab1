package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/employees/employee/controller"
)

// EmployeeRoutes expects a router that already carries the auth gate.
func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	employeeCtrl := controller.NewEmployeeController(db)

	employees := api.Group("/employees")
	employees.Get("/", employeeCtrl.ListEmployees)
	employees.Get("/departments", employeeCtrl.ListDepartments)
	employees.Post("/", employeeCtrl.CreateEmployee)
	employees.Put("/:id", employeeCtrl.UpdateEmployee)
	employees.Delete("/:id", employeeCtrl.DeleteEmployee)
}
