package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreatePatientRequest deliberately has no user_id field: ownership is bound
// from the authenticated caller, never from the payload.
type CreatePatientRequest struct {
	FirstName        string `json:"first_name" validate:"required,max=100"`
	LastName         string `json:"last_name" validate:"required,max=100"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Gender           string `json:"gender" validate:"required,oneof=M F O"`
	PhoneNumber      string `json:"phone_number" validate:"required,max=15"`
	Address          string `json:"address" validate:"required"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty"`
	EmergencyContact string `json:"emergency_contact" validate:"required,max=100"`
	EmergencyPhone   string `json:"emergency_phone" validate:"required,max=15"`
}

type UpdatePatientRequest struct {
	FirstName        string `json:"first_name" validate:"omitempty,max=100"`
	LastName         string `json:"last_name" validate:"omitempty,max=100"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender           string `json:"gender" validate:"omitempty,oneof=M F O"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,max=15"`
	Address          string `json:"address" validate:"omitempty"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=100"`
	EmergencyPhone   string `json:"emergency_phone" validate:"omitempty,max=15"`
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	DateOfBirth      string    `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	PhoneNumber      string    `json:"phone_number"`
	Address          string    `json:"address"`
	MedicalHistory   string    `json:"medical_history,omitempty"`
	EmergencyContact string    `json:"emergency_contact"`
	EmergencyPhone   string    `json:"emergency_phone"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
