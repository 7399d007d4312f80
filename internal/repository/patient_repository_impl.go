package repository

import (
	"context"
	"errors"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

// FindByIDAndUserID filters on both id and owner, so a foreign record reads
// the same as a missing one.
func (r *patientRepository) FindByIDAndUserID(ctx context.Context, db *gorm.DB, id, userID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Search(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter *entity.PatientFilter) ([]entity.Patient, error) {
	query := db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}

	var patients []entity.Patient
	err := query.Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

// DeleteByIDAndUserID hard-deletes the patient; assignments go with it via
// the ON DELETE CASCADE foreign key. Returns affected rows so the caller can
// distinguish "deleted" from "not found / not yours".
func (r *patientRepository) DeleteByIDAndUserID(ctx context.Context, db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
