package dto

// ============================
// Response DTOs
// ============================

// AttendanceDTO is the ledger row joined with the owning employee.
type AttendanceDTO struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

type DepartmentCountDTO struct {
	Department string `json:"department" gorm:"column:department"`
	Count      int64  `json:"count" gorm:"column:count"`
}

type DashboardDTO struct {
	TotalEmployees int64                `json:"total_employees"`
	PresentToday   int64                `json:"present_today"`
	AbsentToday    int64                `json:"absent_today"`
	Departments    []DepartmentCountDTO `json:"departments"`
}

// ============================
// Mark Request DTO
// ============================

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required"`
}
