package catalog

import "github.com/BruksfildServices01/barber-queue/internal/httperr"

var (
	ErrDuplicatePhone       = httperr.New(httperr.KindValidation, "duplicate_phone")
	ErrDuplicateServiceName = httperr.New(httperr.KindValidation, "duplicate_service_name")
	ErrInvalidDuration      = httperr.New(httperr.KindValidation, "invalid_duration")
	ErrInvalidPrice         = httperr.New(httperr.KindValidation, "invalid_price")
	ErrNameRequired         = httperr.New(httperr.KindValidation, "name_required")
	ErrPhoneRequired        = httperr.New(httperr.KindValidation, "phone_required")
	ErrInvalidAgeGroup      = httperr.New(httperr.KindValidation, "invalid_age_group")
	ErrInvalidGender        = httperr.New(httperr.KindValidation, "invalid_gender")
	ErrInvalidWorkHours     = httperr.New(httperr.KindValidation, "invalid_work_hours")
	ErrInvalidTimezone      = httperr.New(httperr.KindValidation, "invalid_timezone")
)
