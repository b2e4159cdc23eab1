package dto

import (
	"strings"
	"time"

	"hrms_backend/internals/features/employees/employee/model"
)

// ============================
// Response DTO
// ============================

type EmployeeDTO struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateEmployeeRequest struct {
	ID         string `json:"id" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
}

// Normalize trims whitespace so `required` also rejects blank-only input.
func (r *CreateEmployeeRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)
}

// ============================
// Update Request DTO (partial)
// ============================

// Pointer fields: nil means "not provided", only provided fields change.
type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Department *string `json:"department"`
}

// ============================
// Converter
// ============================

func ToEmployeeDTO(m model.EmployeeModel) EmployeeDTO {
	return EmployeeDTO{
		ID:         m.EmployeeID,
		FullName:   m.EmployeeFullName,
		Email:      m.EmployeeEmail,
		Department: m.EmployeeDepartment,
		CreatedAt:  m.EmployeeCreatedAt,
	}
}
