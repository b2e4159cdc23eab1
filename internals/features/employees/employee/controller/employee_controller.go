package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/employees/employee/dto"
	"hrms_backend/internals/features/employees/employee/model"
	helper "hrms_backend/internals/helpers"
)

var validateEmployee = validator.New()

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

// =======================
// 📄 List Employees
// Query: ?search=&department=
// =======================
func (ctrl *EmployeeController) ListEmployees(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.EmployeeModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(employee_full_name) LIKE ? OR LOWER(employee_email) LIKE ? OR LOWER(employee_id) LIKE ?",
			term, term, term,
		)
	}
	if department := c.Query("department"); department != "" {
		q = q.Where("employee_department = ?", department)
	}

	var employees []model.EmployeeModel
	if err := q.Order("employee_full_name ASC").Find(&employees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve employees")
	}

	resp := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, dto.ToEmployeeDTO(e))
	}
	return helper.JsonOK(c, resp)
}

// =======================
// 📄 Distinct departments (ascending)
// =======================
func (ctrl *EmployeeController) ListDepartments(c *fiber.Ctx) error {
	var departments []string
	if err := ctrl.DB.Model(&model.EmployeeModel{}).
		Distinct("employee_department").
		Order("employee_department ASC").
		Pluck("employee_department", &departments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve departments")
	}
	return helper.JsonOK(c, departments)
}

// =======================
// ➕ Create Employee
// =======================
func (ctrl *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	var body dto.CreateEmployeeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validateEmployee.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Pre-checks give specific messages; the unique indexes stay the final arbiter.
	var count int64
	if err := ctrl.DB.Model(&model.EmployeeModel{}).
		Where("employee_id = ?", body.ID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Employee ID already exists")
	}
	if err := ctrl.DB.Model(&model.EmployeeModel{}).
		Where("employee_email = ?", body.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email address already exists")
	}

	emp := model.EmployeeModel{
		EmployeeID:         body.ID,
		EmployeeFullName:   body.FullName,
		EmployeeEmail:      body.Email,
		EmployeeDepartment: body.Department,
	}
	if err := ctrl.DB.Create(&emp).Error; err != nil {
		if isUniqueViolation(err) {
			// Lost a race with a concurrent insert that slipped past the pre-check
			return helper.JsonError(c, fiber.StatusBadRequest, "Duplicate entry detected")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}

	return helper.JsonCreated(c, dto.ToEmployeeDTO(emp))
}

// =======================
// ✏️ Update Employee (partial)
// =======================
func (ctrl *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	id := c.Params("id")

	var emp model.EmployeeModel
	if err := ctrl.DB.First(&emp, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}

	var body dto.UpdateEmployeeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEmployee.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Apply only the fields present in the payload
	updates := map[string]interface{}{}
	if body.FullName != nil {
		v := strings.TrimSpace(*body.FullName)
		if v == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "full_name cannot be empty")
		}
		updates["employee_full_name"] = v
	}
	if body.Department != nil {
		v := strings.TrimSpace(*body.Department)
		if v == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "department cannot be empty")
		}
		updates["employee_department"] = v
	}
	if body.Email != nil {
		v := strings.TrimSpace(*body.Email)
		if v == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "email cannot be empty")
		}
		if v != emp.EmployeeEmail {
			var count int64
			if err := ctrl.DB.Model(&model.EmployeeModel{}).
				Where("employee_email = ?", v).Count(&count).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
			}
			if count > 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "Email address already exists")
			}
		}
		updates["employee_email"] = v
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&emp).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Update failed due to duplicate data")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
		}
	}

	if err := ctrl.DB.First(&emp, "employee_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}
	return helper.JsonOK(c, dto.ToEmployeeDTO(emp))
}

// =============================
// 🗑️ Delete Employee (cascades attendance)
// =============================
func (ctrl *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	id := c.Params("id")

	var emp model.EmployeeModel
	if err := ctrl.DB.First(&emp, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete employee")
	}

	// Attendance rows go with the employee via ON DELETE CASCADE
	if err := ctrl.DB.Delete(&emp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete employee")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Employee deleted successfully")
}

// isUniqueViolation: detect unique violations without importing a driver,
// works for Postgres ("duplicate key ... unique constraint") and SQLite
// ("UNIQUE constraint failed") alike.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
