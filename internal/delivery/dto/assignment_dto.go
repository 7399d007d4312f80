package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAssignmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Notes     string    `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AssignmentResponse struct {
	ID           uuid.UUID        `json:"id"`
	Patient      *PatientResponse `json:"patient,omitempty"`
	Doctor       *DoctorResponse  `json:"doctor,omitempty"`
	PatientID    uuid.UUID        `json:"patient_id"`
	DoctorID     uuid.UUID        `json:"doctor_id"`
	AssignedDate time.Time        `json:"assigned_date"`
	IsActive     *bool            `json:"is_active"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}
