package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links a patient to a doctor. At most one active assignment may
// exist per (patient, doctor) pair; the partial unique index
// idx_assignments_active_pair in the schema enforces it. Removal is a soft
// delete: IsActive flips to false and the row stays for history.
type Assignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AssignedDate time.Time `gorm:"autoCreateTime;index" json:"assigned_date"`
	IsActive     *bool     `gorm:"not null;default:true;index" json:"is_active"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}
