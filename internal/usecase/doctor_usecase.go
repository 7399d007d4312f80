package usecase

import (
	"context"
	"errors"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrLicenseNumberExists = errors.New("license number already exists")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	SearchDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	doctor := &entity.Doctor{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Specialization:  req.Specialization,
		LicenseNumber:   req.LicenseNumber,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		ExperienceYears: *req.ExperienceYears,
		Gender:          req.Gender,
		Address:         req.Address,
		IsAvailable:     &isAvailable,
	}

	if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseNumberExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) SearchDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.Search(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.FirstName != "" {
		doctor.FirstName = req.FirstName
	}
	if req.LastName != "" {
		doctor.LastName = req.LastName
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.LicenseNumber != "" {
		doctor.LicenseNumber = req.LicenseNumber
	}
	if req.PhoneNumber != "" {
		doctor.PhoneNumber = req.PhoneNumber
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.Gender != "" {
		doctor.Gender = req.Gender
	}
	if req.Address != "" {
		doctor.Address = req.Address
	}
	if req.IsAvailable != nil {
		doctor.IsAvailable = req.IsAvailable
	}

	if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseNumberExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor hard-deletes the record; the store cascades to assignments.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.doctorRepo.Delete(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
