package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	Search(ctx context.Context, db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
