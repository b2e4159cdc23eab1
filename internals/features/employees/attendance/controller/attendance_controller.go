package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hrms_backend/internals/features/employees/attendance/dto"
	"hrms_backend/internals/features/employees/attendance/model"
	employeeModel "hrms_backend/internals/features/employees/employee/model"
	helper "hrms_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

var validateAttendance = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// scan target for the employee join
type attendanceJoinRow struct {
	AttendanceID         uint           `gorm:"column:attendance_id"`
	AttendanceEmployeeID string         `gorm:"column:attendance_employee_id"`
	AttendanceDate       datatypes.Date `gorm:"column:attendance_date"`
	AttendanceStatus     string         `gorm:"column:attendance_status"`
	EmployeeFullName     string         `gorm:"column:employee_full_name"`
	EmployeeDepartment   string         `gorm:"column:employee_department"`
}

// =======================
// 📄 List Attendance
// Query: ?employee_id=&date=&department=&status=
// =======================
func (ctrl *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	q := ctrl.DB.Table("attendance").
		Select("attendance.attendance_id, attendance.attendance_employee_id, attendance.attendance_date, attendance.attendance_status, employees.employee_full_name, employees.employee_department").
		Joins("JOIN employees ON employees.employee_id = attendance.attendance_employee_id")

	if employeeID := c.Query("employee_id"); employeeID != "" {
		q = q.Where("attendance.attendance_employee_id = ?", employeeID)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := parseDate(dateStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		}
		q = q.Where("attendance.attendance_date = ?", datatypes.Date(day))
	}
	if department := c.Query("department"); department != "" {
		q = q.Where("employees.employee_department = ?", department)
	}
	if statusStr := c.Query("status"); statusStr != "" {
		// Unrecognized status means "no filter", not an error
		if status, err := model.ParseAttendanceStatus(statusStr); err == nil {
			q = q.Where("attendance.attendance_status = ?", status)
		}
	}

	var rows []attendanceJoinRow
	if err := q.Order("attendance.attendance_date DESC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	resp := make([]dto.AttendanceDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.AttendanceDTO{
			ID:         r.AttendanceID,
			EmployeeID: r.AttendanceEmployeeID,
			Date:       time.Time(r.AttendanceDate).Format(dateLayout),
			Status:     r.AttendanceStatus,
			FullName:   r.EmployeeFullName,
			Department: r.EmployeeDepartment,
		})
	}
	return helper.JsonOK(c, resp)
}

// =======================
// ➕ Mark Attendance (upsert per employee+date)
// =======================
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var body dto.MarkAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status, err := model.ParseAttendanceStatus(body.Status)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status must be Present or Absent")
	}
	day, err := parseDate(body.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}

	var count int64
	if err := ctrl.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employee_id = ?", body.EmployeeID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
	}

	// Common path: the pair already exists, overwrite the status in place
	var existing model.AttendanceModel
	err = ctrl.DB.Where("attendance_employee_id = ? AND attendance_date = ?",
		body.EmployeeID, datatypes.Date(day)).First(&existing).Error
	if err == nil {
		if err := ctrl.DB.Model(&existing).
			Update("attendance_status", status).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
		}
		return helper.JsonMessage(c, fiber.StatusOK, "Attendance updated")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	att := model.AttendanceModel{
		AttendanceEmployeeID: body.EmployeeID,
		AttendanceDate:       datatypes.Date(day),
		AttendanceStatus:     status,
	}
	if err := ctrl.DB.Create(&att).Error; err != nil {
		// A concurrent mark for the same pair can still beat us to the insert;
		// the unique index is the final arbiter.
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Attendance already marked for this date")
		}
		// Employee deleted between the pre-check and the insert
		if isForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return helper.JsonMessage(c, fiber.StatusCreated, "Attendance marked successfully")
}

// =======================
// 📊 Dashboard
// =======================
func (ctrl *AttendanceController) Dashboard(c *fiber.Ctx) error {
	today := datatypes.Date(todayUTC())

	var totalEmployees int64
	if err := ctrl.DB.Model(&employeeModel.EmployeeModel{}).
		Count(&totalEmployees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	var presentToday int64
	if err := ctrl.DB.Model(&model.AttendanceModel{}).
		Where("attendance_date = ? AND attendance_status = ?", today, model.StatusPresent).
		Count(&presentToday).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	var absentToday int64
	if err := ctrl.DB.Model(&model.AttendanceModel{}).
		Where("attendance_date = ? AND attendance_status = ?", today, model.StatusAbsent).
		Count(&absentToday).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	departments := make([]dto.DepartmentCountDTO, 0)
	if err := ctrl.DB.Model(&employeeModel.EmployeeModel{}).
		Select("employee_department AS department, COUNT(*) AS count").
		Group("employee_department").
		Order("employee_department ASC").
		Scan(&departments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	return helper.JsonOK(c, dto.DashboardDTO{
		TotalEmployees: totalEmployees,
		PresentToday:   presentToday,
		AbsentToday:    absentToday,
		Departments:    departments,
	})
}

// =============================
// utils
// =============================

// All dates live at UTC midnight so equality holds across drivers.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Driver-agnostic constraint checks (Postgres and SQLite wordings)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
