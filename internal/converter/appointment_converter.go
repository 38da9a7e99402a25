package converter

import (
	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/pkg/timeslot"
)

// AppointmentToResponse converts an Appointment entity to its DTO. Dates and
// slot labels render in canonical form regardless of the format they were
// booked with.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	slot := timeslot.Slot{MinuteOfDay: appointment.SlotMinutes}

	return &dto.AppointmentResponse{
		ID:            appointment.ID,
		DoctorID:      appointment.DoctorCode,
		DoctorName:    appointment.DoctorName,
		Specialty:     appointment.Specialty,
		Date:          appointment.VisitDate.Format("2006-01-02"),
		Time:          slot.Label(),
		Location:      appointment.Location,
		Status:        string(appointment.Status),
		PaymentStatus: string(appointment.PaymentStatus),
		Amount:        appointment.Amount,
		Notes:         appointment.Notes,
		PatientName:   appointment.PatientName,
		ResultFile:    appointment.ResultFile,
		CreatedAt:     appointment.CreatedAt,
		UpdatedAt:     appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
