package model

import (
	"fmt"

	"gorm.io/datatypes"
)

// AttendanceStatus is a closed set; anything else is rejected at the boundary.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch AttendanceStatus(s) {
	case StatusPresent:
		return StatusPresent, nil
	case StatusAbsent:
		return StatusAbsent, nil
	}
	return "", fmt.Errorf("invalid attendance status %q", s)
}

type AttendanceModel struct {
	AttendanceID         uint             `gorm:"column:attendance_id;primaryKey;autoIncrement" json:"attendance_id"`
	AttendanceEmployeeID string           `gorm:"column:attendance_employee_id;type:varchar(50);not null;uniqueIndex:uq_attendance_employee_date" json:"attendance_employee_id"`
	AttendanceDate       datatypes.Date   `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date" json:"attendance_date"`
	AttendanceStatus     AttendanceStatus `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`
}

// TableName sets the name of the table
func (AttendanceModel) TableName() string {
	return "attendance"
}
