package entity

import (
	"time"

	"github.com/google/uuid"
)

// Specialization codes
const (
	SpecializationCardiology       = "CAR"
	SpecializationDermatology      = "DER"
	SpecializationEndocrinology    = "END"
	SpecializationGastroenterology = "GAST"
	SpecializationNeurology        = "NEU"
	SpecializationOncology         = "ONC"
	SpecializationOrthopedics      = "ORT"
	SpecializationPediatrics       = "PED"
	SpecializationPsychiatry       = "PSY"
	SpecializationRadiology        = "RAD"
	SpecializationSurgery          = "SUR"
	SpecializationGeneralMedicine  = "GEN"
)

// SpecializationNames maps specialization codes to display names
var SpecializationNames = map[string]string{
	SpecializationCardiology:       "Cardiology",
	SpecializationDermatology:      "Dermatology",
	SpecializationEndocrinology:    "Endocrinology",
	SpecializationGastroenterology: "Gastroenterology",
	SpecializationNeurology:        "Neurology",
	SpecializationOncology:         "Oncology",
	SpecializationOrthopedics:      "Orthopedics",
	SpecializationPediatrics:       "Pediatrics",
	SpecializationPsychiatry:       "Psychiatry",
	SpecializationRadiology:        "Radiology",
	SpecializationSurgery:          "Surgery",
	SpecializationGeneralMedicine:  "General Medicine",
}

// Doctor represents a doctor in the global directory, not owned by any user
type Doctor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName       string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName        string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialization  string    `gorm:"type:varchar(4);not null;index" json:"specialization"`
	LicenseNumber   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	PhoneNumber     string    `gorm:"type:varchar(15);not null" json:"phone_number"`
	Email           string    `gorm:"type:varchar(255);not null" json:"email"`
	ExperienceYears int       `gorm:"not null;check:experience_years >= 0" json:"experience_years"`
	Gender          string    `gorm:"type:char(1);not null" json:"gender"`
	Address         string    `gorm:"type:text;not null" json:"address"`
	IsAvailable     *bool     `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Assignments []Assignment `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// FullName joins title, first and last name for display
func (d *Doctor) FullName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}

// SpecializationDisplay returns the human-readable specialization name
func (d *Doctor) SpecializationDisplay() string {
	return SpecializationNames[d.Specialization]
}

// DoctorFilter is a domain-level filter for searching the doctor directory
type DoctorFilter struct {
	Name           string // Substring match across first/last name (ILIKE)
	Specialization string // Exact match on specialization code
	Available      *bool  // Match on availability flag when set
}
