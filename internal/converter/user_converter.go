package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The password hash and admin flag never leave the entity.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Consent:   user.Consent,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
