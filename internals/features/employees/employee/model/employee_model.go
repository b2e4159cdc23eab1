package model

import (
	"time"

	attendanceModel "hrms_backend/internals/features/employees/attendance/model"
)

type EmployeeModel struct {
	EmployeeID         string    `gorm:"column:employee_id;type:varchar(50);primaryKey" json:"employee_id"`
	EmployeeFullName   string    `gorm:"column:employee_full_name;type:varchar(200);not null" json:"employee_full_name"`
	EmployeeEmail      string    `gorm:"column:employee_email;type:varchar(255);uniqueIndex;not null" json:"employee_email"`
	EmployeeDepartment string    `gorm:"column:employee_department;type:varchar(100);not null" json:"employee_department"`
	EmployeeCreatedAt  time.Time `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`

	// Attendance rows die with their employee (ON DELETE CASCADE)
	EmployeeAttendance []attendanceModel.AttendanceModel `gorm:"foreignKey:AttendanceEmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName sets the name of the table
func (EmployeeModel) TableName() string {
	return "employees"
}
