package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender codes shared by Patient and Doctor
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Patient represents a patient record owned by exactly one user
type Patient struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FirstName        string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName         string    `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth      time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender           string    `gorm:"type:char(1);not null" json:"gender"`
	PhoneNumber      string    `gorm:"type:varchar(15);not null" json:"phone_number"`
	Address          string    `gorm:"type:text;not null" json:"address"`
	MedicalHistory   string    `gorm:"type:text" json:"medical_history,omitempty"`
	EmergencyContact string    `gorm:"type:varchar(100);not null" json:"emergency_contact"`
	EmergencyPhone   string    `gorm:"type:varchar(15);not null" json:"emergency_phone"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName joins first and last name for display
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PatientFilter is a domain-level filter for querying a user's patients.
// Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Name   string // Substring match across first/last name (ILIKE)
	Gender string // Exact match on gender code
}
