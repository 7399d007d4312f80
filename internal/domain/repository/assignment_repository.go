package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, assignment *entity.Assignment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Assignment, error)
	FindActiveByPair(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Assignment, error)
	FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Assignment, error)
	FindActiveByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Assignment, error)
	Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
