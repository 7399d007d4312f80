package usecase

import (
	"context"
	"errors"

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
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAlreadyAssigned    = errors.New("this patient is already assigned to this doctor")
)

type AssignmentUsecase interface {
	CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetActiveAssignments(ctx context.Context) (*dto.AssignmentListResponse, error)
	GetAssignmentsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AssignmentListResponse, error)
	DeactivateAssignment(ctx context.Context, assignmentID uuid.UUID) error
}

type assignmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	assignmentRepo repository.AssignmentRepository
	patientRepo    repository.PatientRepository
	doctorRepo     repository.DoctorRepository
}

func NewAssignmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	assignmentRepo repository.AssignmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) AssignmentUsecase {
	return &assignmentUsecase{
		db:             db,
		log:            log,
		assignmentRepo: assignmentRepo,
		patientRepo:    patientRepo,
		doctorRepo:     doctorRepo,
	}
}

// CreateAssignment links a patient to a doctor.
//
// The active-pair pre-check runs inside the same transaction as the insert,
// but the partial unique index on (patient_id, doctor_id) WHERE is_active is
// the actual invariant enforcer: when two concurrent requests race past the
// pre-check, the loser's insert fails with 23505 and is translated to the
// same conflict error.
func (u *assignmentUsecase) CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrMissingIdentity
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Resolve both sides; the patient lookup is owner-scoped so a foreign
	// patient 404s like a missing one
	patient, err := u.patientRepo.FindByIDAndUserID(ctx, tx, req.PatientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Fast-path duplicate check
	existing, err := u.assignmentRepo.FindActiveByPair(ctx, tx, req.PatientID, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to check existing assignment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyAssigned
	}

	isActive := true
	assignment := &entity.Assignment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		IsActive:  &isActive,
		Notes:     req.Notes,
	}

	if err := u.assignmentRepo.Create(ctx, tx, assignment); err != nil {
		if isDuplicateKeyError(err, "active_pair") {
			return nil, ErrAlreadyAssigned
		}
		u.log.Warnf("Failed to create assignment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	assignment.Patient = *patient
	assignment.Doctor = *doctor
	return converter.AssignmentToResponse(assignment), nil
}

func (u *assignmentUsecase) GetActiveAssignments(ctx context.Context) (*dto.AssignmentListResponse, error) {
	assignments, err := u.assignmentRepo.FindAllActive(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find active assignments: %+v", err)
		return nil, err
	}

	responses := converter.AssignmentsToResponses(assignments)
	return &dto.AssignmentListResponse{
		Assignments: responses,
		Total:       len(responses),
	}, nil
}

// GetAssignmentsByPatient returns an empty list, not an error, when the
// patient is absent or belongs to another user.
func (u *assignmentUsecase) GetAssignmentsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AssignmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrMissingIdentity
	}

	patient, err := u.patientRepo.FindByIDAndUserID(ctx, u.db, patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return &dto.AssignmentListResponse{
			Assignments: []dto.AssignmentResponse{},
			Total:       0,
		}, nil
	}

	assignments, err := u.assignmentRepo.FindActiveByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find assignments for patient %s: %+v", patientID, err)
		return nil, err
	}

	responses := converter.AssignmentsToResponses(assignments)
	return &dto.AssignmentListResponse{
		Assignments: responses,
		Total:       len(responses),
	}, nil
}

// DeactivateAssignment soft-deletes: the row stays, is_active flips off.
// Deactivating an already-inactive assignment is a no-op, not an error.
func (u *assignmentUsecase) DeactivateAssignment(ctx context.Context, assignmentID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	assignment, err := u.assignmentRepo.FindByID(ctx, tx, assignmentID)
	if err != nil {
		u.log.Warnf("Failed to find assignment %s: %+v", assignmentID, err)
		return err
	}
	if assignment == nil {
		return ErrAssignmentNotFound
	}

	// 0 affected rows means it was already inactive; still a success
	if _, err := u.assignmentRepo.Deactivate(ctx, tx, assignmentID); err != nil {
		u.log.Warnf("Failed to deactivate assignment %s: %+v", assignmentID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
