package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                    doctor.ID,
		FirstName:             doctor.FirstName,
		LastName:              doctor.LastName,
		FullName:              doctor.FullName(),
		Specialization:        doctor.Specialization,
		SpecializationDisplay: doctor.SpecializationDisplay(),
		LicenseNumber:         doctor.LicenseNumber,
		PhoneNumber:           doctor.PhoneNumber,
		Email:                 doctor.Email,
		ExperienceYears:       doctor.ExperienceYears,
		Gender:                doctor.Gender,
		Address:               doctor.Address,
		IsAvailable:           doctor.IsAvailable,
		CreatedAt:             doctor.CreatedAt,
		UpdatedAt:             doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
