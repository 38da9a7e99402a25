package converter

import (
	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Code:            doctor.Code,
		Name:            doctor.Name,
		Specialty:       doctor.Specialty,
		Location:        doctor.Location,
		LocationID:      doctor.LocationID,
		Rating:          doctor.Rating,
		Reviews:         doctor.Reviews,
		Available:       doctor.Available,
		ConsultationFee: doctor.ConsultationFee,
		About:           doctor.About,
	}
}

// DoctorsToResponses converts a slice of Doctor entities
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
