package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	Specialization  string `json:"specialization" validate:"required,oneof=CAR DER END GAST NEU ONC ORT PED PSY RAD SUR GEN"`
	LicenseNumber   string `json:"license_number" validate:"required,max=50"`
	PhoneNumber     string `json:"phone_number" validate:"required,max=15"`
	Email           string `json:"email" validate:"required,email"`
	ExperienceYears *int   `json:"experience_years" validate:"required,gte=0"`
	Gender          string `json:"gender" validate:"required,oneof=M F O"`
	Address         string `json:"address" validate:"required"`
	IsAvailable     *bool  `json:"is_available" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	FirstName       string `json:"first_name" validate:"omitempty,max=100"`
	LastName        string `json:"last_name" validate:"omitempty,max=100"`
	Specialization  string `json:"specialization" validate:"omitempty,oneof=CAR DER END GAST NEU ONC ORT PED PSY RAD SUR GEN"`
	LicenseNumber   string `json:"license_number" validate:"omitempty,max=50"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,max=15"`
	Email           string `json:"email" validate:"omitempty,email"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	Gender          string `json:"gender" validate:"omitempty,oneof=M F O"`
	Address         string `json:"address" validate:"omitempty"`
	IsAvailable     *bool  `json:"is_available" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID                    uuid.UUID `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	FullName              string    `json:"full_name"`
	Specialization        string    `json:"specialization"`
	SpecializationDisplay string    `json:"specialization_display"`
	LicenseNumber         string    `json:"license_number"`
	PhoneNumber           string    `json:"phone_number"`
	Email                 string    `json:"email"`
	ExperienceYears       int       `json:"experience_years"`
	Gender                string    `json:"gender"`
	Address               string    `json:"address"`
	IsAvailable           *bool     `json:"is_available"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
