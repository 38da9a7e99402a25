package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/internal/service"
	"pathlab-booking/internal/usecase"
	"pathlab-booking/pkg/response"
	"pathlab-booking/pkg/timeslot"
	"pathlab-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AppointmentHandler serves both the patient-facing booking endpoints and
// the admin lifecycle transitions (confirm, complete, deliver results).
type AppointmentHandler struct {
	bookingUsecase     usecase.BookingUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	bookingUsecase usecase.BookingUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUsecase:     bookingUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// ListAppointments returns the caller's appointments; admins see all of them.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.bookingUsecase.ListAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// CreateAppointment books a slot with a doctor
// @Summary Book an appointment
// @Description Book a (doctor, date, time) slot; conflicts return 409
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// RescheduleAppointment moves an appointment to a new slot, subject to the
// same conflict check as booking.
func (h *AppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.RescheduleAppointment(r.Context(), id, &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to reschedule appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}

// UpdateAppointment merges non-lifecycle fields into an appointment.
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// CancelAppointment soft-cancels; the record stays visible in history.
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.bookingUsecase.CancelAppointment(r.Context(), id); err != nil {
		h.writeBookingError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// GetBookedSlots lists the taken slot labels for a doctor on a date. Public:
// the booking form calls it before login.
func (h *AppointmentHandler) GetBookedSlots(w http.ResponseWriter, r *http.Request) {
	doctorCode := r.URL.Query().Get("doctorId")
	date := r.URL.Query().Get("date")
	if doctorCode == "" || date == "" {
		response.Error(w, http.StatusBadRequest, "doctorId and date query parameters are required", nil)
		return
	}

	slots, err := h.bookingUsecase.GetBookedSlots(r.Context(), doctorCode, date)
	if err != nil {
		h.writeBookingError(w, err, "Failed to get booked slots")
		return
	}

	response.Success(w, http.StatusOK, "Booked slots retrieved successfully", slots)
}

// ConfirmAppointment moves a pending appointment to Confirmed.
func (h *AppointmentHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.ConfirmAppointment, "Appointment confirmed successfully")
}

// CompleteAppointment marks a confirmed appointment as Completed.
func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.CompleteAppointment, "Appointment completed successfully")
}

// DeliverResults attaches the result file and moves the appointment to
// ResultsReady.
func (h *AppointmentHandler) DeliverResults(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req dto.DeliverResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.DeliverResults(r.Context(), id, &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to deliver results")
		return
	}

	response.Success(w, http.StatusOK, "Results delivered successfully", appointment)
}

func (h *AppointmentHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error),
	message string,
) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	appointment, err := apply(r.Context(), id)
	if err != nil {
		h.writeBookingError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, message, appointment)
}

func (h *AppointmentHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// writeBookingError maps usecase sentinels to HTTP statuses.
func (h *AppointmentHandler) writeBookingError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrAppointmentNotOwned:
		response.Forbidden(w, "Appointment does not belong to you")
	case usecase.ErrDoctorUnavailable:
		response.Error(w, http.StatusConflict, "Doctor is not accepting bookings", nil)
	case service.ErrSlotTaken:
		response.Error(w, http.StatusConflict, "This slot is already booked", nil)
	case usecase.ErrAlreadyCancelled:
		response.Error(w, http.StatusConflict, "Appointment is already cancelled", nil)
	case entity.ErrIllegalTransition:
		response.Error(w, http.StatusConflict, "Appointment status does not allow this operation", nil)
	case usecase.ErrDateInPast:
		response.Error(w, http.StatusBadRequest, "Cannot book a past date", nil)
	case timeslot.ErrInvalidDate:
		response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
	case timeslot.ErrInvalidSlot:
		response.Error(w, http.StatusBadRequest, "Invalid time slot, use HH:MM AM/PM", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
