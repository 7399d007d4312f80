package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository scopes every lookup to the owning user so that a record
// belonging to someone else is indistinguishable from one that does not exist.
type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByIDAndUserID(ctx context.Context, db *gorm.DB, id, userID uuid.UUID) (*entity.Patient, error)
	FindAllByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Patient, error)
	Search(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter *entity.PatientFilter) ([]entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	DeleteByIDAndUserID(ctx context.Context, db *gorm.DB, id, userID uuid.UUID) (int64, error)
}
