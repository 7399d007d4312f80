package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignmentToResponse converts an Assignment entity to AssignmentResponse
// DTO. Patient and Doctor are embedded only when the repository preloaded
// them.
func AssignmentToResponse(assignment *entity.Assignment) *dto.AssignmentResponse {
	if assignment == nil {
		return nil
	}

	resp := &dto.AssignmentResponse{
		ID:           assignment.ID,
		PatientID:    assignment.PatientID,
		DoctorID:     assignment.DoctorID,
		AssignedDate: assignment.AssignedDate,
		IsActive:     assignment.IsActive,
		Notes:        assignment.Notes,
		CreatedAt:    assignment.CreatedAt,
		UpdatedAt:    assignment.UpdatedAt,
	}

	if assignment.Patient.ID != uuid.Nil {
		resp.Patient = PatientToResponse(&assignment.Patient)
	}
	if assignment.Doctor.ID != uuid.Nil {
		resp.Doctor = DoctorToResponse(&assignment.Doctor)
	}

	return resp
}

// AssignmentsToResponses converts a slice of Assignment entities to response DTOs
func AssignmentsToResponses(assignments []entity.Assignment) []dto.AssignmentResponse {
	responses := make([]dto.AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *AssignmentToResponse(&assignments[i])
	}
	return responses
}
