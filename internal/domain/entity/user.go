package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns patient records
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Consent   bool      `gorm:"not null" json:"consent"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"patients,omitempty"`
}

func (User) TableName() string {
	return "users"
}
