package repository

import (
	"context"
	"errors"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).Order("created_at DESC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	query := db.WithContext(ctx)

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
	}
	if filter.Specialization != "" {
		query = query.Where("specialization = ?", filter.Specialization)
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}

	var doctors []entity.Doctor
	err := query.Order("created_at DESC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Save(doctor).Error
}

// Delete hard-deletes the doctor; dependent assignments are removed by the
// ON DELETE CASCADE foreign key.
func (r *doctorRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
