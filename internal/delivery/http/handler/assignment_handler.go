package handler

import (
	"encoding/json"
	"net/http"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"
	"go-healthcare-records/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AssignmentHandler struct {
	assignmentUsecase usecase.AssignmentUsecase
	validator         *validator.CustomValidator
}

func NewAssignmentHandler(assignmentUsecase usecase.AssignmentUsecase, validator *validator.CustomValidator) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUsecase: assignmentUsecase,
		validator:         validator,
	}
}

// CreateAssignment assigns a doctor to one of the caller's patients
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignment, err := h.assignmentUsecase.CreateAssignment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrAlreadyAssigned:
			response.Conflict(w, "This patient is already assigned to this doctor")
		default:
			response.InternalServerError(w, "Failed to create assignment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Assignment created successfully", assignment)
}

// GetActiveAssignments lists every active patient-doctor link
func (h *AssignmentHandler) GetActiveAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentUsecase.GetActiveAssignments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get assignments")
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", assignments)
}

// GetAssignmentsByPatient lists the doctors assigned to one of the caller's
// patients; a foreign or missing patient yields an empty list
func (h *AssignmentHandler) GetAssignmentsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	assignments, err := h.assignmentUsecase.GetAssignmentsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get assignments")
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", assignments)
}

// DeactivateAssignment soft-deletes the link; repeated calls are no-ops
func (h *AssignmentHandler) DeactivateAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid assignment ID", nil)
		return
	}

	if err := h.assignmentUsecase.DeactivateAssignment(r.Context(), assignmentID); err != nil {
		switch err {
		case usecase.ErrAssignmentNotFound:
			response.NotFound(w, "Assignment not found")
		default:
			response.InternalServerError(w, "Failed to deactivate assignment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Assignment deactivated successfully", nil)
}
