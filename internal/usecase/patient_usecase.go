package usecase

import (
	"context"
	"errors"
	"time"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMissingIdentity   = errors.New("user not found in context")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	GetMyPatients(ctx context.Context) (*dto.PatientListResponse, error)
	SearchPatients(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID uuid.UUID) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

// CreatePatient binds the owning user from the caller's identity; the
// payload cannot set user_id.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrMissingIdentity
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		UserID:           userID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		MedicalHistory:   req.MedicalHistory,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	}

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// GetPatient returns not-found for records owned by another user; ownership
// and existence are indistinguishable to the caller.
func (u *patientUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrMissingIdentity
	}

	patient, err := u.patientRepo.FindByIDAndUserID(ctx, u.db, patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetMyPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrMissingIdentity
	}

	patients, err := u.patientRepo.FindAllByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patients for user %s: %+v", userID, err)
		return nil, err
	}

	responses := converter.PatientsToResponses(patients)
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) SearchPatients(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrMissingIdentity
	}

	patients, err := u.patientRepo.Search(ctx, u.db, userID, filter)
	if err != nil {
		u.log.Warnf("Failed to search patients for user %s: %+v", userID, err)
		return nil, err
	}

	responses := converter.PatientsToResponses(patients)
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrMissingIdentity
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByIDAndUserID(ctx, tx, patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.FirstName != "" {
		patient.FirstName = req.FirstName
	}
	if req.LastName != "" {
		patient.LastName = req.LastName
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = dob
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.PhoneNumber != "" {
		patient.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		patient.Address = req.Address
	}
	if req.MedicalHistory != "" {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.EmergencyContact != "" {
		patient.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyPhone != "" {
		patient.EmergencyPhone = req.EmergencyPhone
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient hard-deletes the record; the store cascades to assignments.
func (u *patientUsecase) DeletePatient(ctx context.Context, patientID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrMissingIdentity
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.patientRepo.DeleteByIDAndUserID(ctx, tx, patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
