package converter

import (
	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password
// hash never leaves the entity.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	joined := ""
	if !user.JoinedDate.IsZero() {
		joined = user.JoinedDate.Format("2006-01-02")
	}

	return &dto.UserResponse{
		ID:                user.ID,
		DisplayID:         user.DisplayID,
		Name:              user.Name,
		Email:             user.Email,
		Role:              user.Role,
		Status:            user.Status,
		Phone:             user.Phone,
		CountryCode:       user.CountryCode,
		DateOfBirth:       user.DateOfBirth,
		Address:           user.Address,
		MedicalNumber:     user.MedicalNumber,
		InsuranceProvider: user.InsuranceProvider,
		InsuranceNumber:   user.InsuranceNumber,
		EmergencyContact:  user.EmergencyContact,
		EmergencyPhone:    user.EmergencyPhone,
		JoinedDate:        joined,
		SavedCards:        user.SavedCards,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		resp := UserToResponse(&user)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
