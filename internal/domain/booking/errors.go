package booking

import "github.com/BruksfildServices01/barber-queue/internal/httperr"

var (
	ErrBarberNotFound  = httperr.New(httperr.KindNotFound, "barber_not_found")
	ErrBookingNotFound = httperr.New(httperr.KindNotFound, "booking_not_found")
	ErrServiceNotFound = httperr.New(httperr.KindNotFound, "service_not_found")
	ErrClientNotFound  = httperr.New(httperr.KindNotFound, "client_not_found")
	ErrNotInQueue      = httperr.New(httperr.KindNotFound, "booking_not_in_queue")

	ErrNotQueueHead    = httperr.New(httperr.KindNotQueueHead, "not_queue_head")
	ErrNotInProgress   = httperr.New(httperr.KindInvalidState, "booking_not_in_progress")
	ErrInvalidState    = httperr.New(httperr.KindInvalidState, "invalid_state")
	ErrAlreadyTerminal = httperr.New(httperr.KindAlreadyTerminal, "booking_already_terminal")
	ErrTimeConflict    = httperr.New(httperr.KindConflict, "time_conflict")

	ErrClientRequired       = httperr.New(httperr.KindValidation, "client_required")
	ErrInvalidDate          = httperr.New(httperr.KindValidation, "invalid_date")
	ErrInvalidTime          = httperr.New(httperr.KindValidation, "invalid_time")
	ErrDateOutOfRange       = httperr.New(httperr.KindValidation, "date_out_of_range")
	ErrInvalidPaymentMethod = httperr.New(httperr.KindValidation, "invalid_payment_method")
	ErrAmountRequired       = httperr.New(httperr.KindValidation, "amount_required")
	ErrInvalidAmount        = httperr.New(httperr.KindValidation, "invalid_amount")
	ErrInvalidStatus        = httperr.New(httperr.KindValidation, "invalid_status")
)
