package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		UserID:           patient.UserID,
		FirstName:        patient.FirstName,
		LastName:         patient.LastName,
		FullName:         patient.FullName(),
		DateOfBirth:      patient.DateOfBirth.Format("2006-01-02"),
		Gender:           patient.Gender,
		PhoneNumber:      patient.PhoneNumber,
		Address:          patient.Address,
		MedicalHistory:   patient.MedicalHistory,
		EmergencyContact: patient.EmergencyContact,
		EmergencyPhone:   patient.EmergencyPhone,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
