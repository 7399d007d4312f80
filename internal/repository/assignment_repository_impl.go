package repository

import (
	"context"
	"errors"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assignmentRepository struct{}

func NewAssignmentRepository() domainRepo.AssignmentRepository {
	return &assignmentRepository{}
}

func (r *assignmentRepository) Create(ctx context.Context, db *gorm.DB, assignment *entity.Assignment) error {
	return db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Assignment, error) {
	var assignment entity.Assignment
	err := db.WithContext(ctx).Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindActiveByPair(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Assignment, error) {
	var assignment entity.Assignment
	err := db.WithContext(ctx).
		Where("patient_id = ? AND doctor_id = ? AND is_active = ?", patientID, doctorID, true).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Assignment, error) {
	var assignments []entity.Assignment
	err := db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("is_active = ?", true).
		Order("assigned_date DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) FindActiveByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Assignment, error) {
	var assignments []entity.Assignment
	err := db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("patient_id = ? AND is_active = ?", patientID, true).
		Order("assigned_date DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Deactivate flips is_active off ONLY when the assignment is still active.
// Returns affected rows: 1 = deactivated, 0 = already inactive (idempotent
// no-op for the caller once existence is established).
func (r *assignmentRepository) Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Assignment{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
