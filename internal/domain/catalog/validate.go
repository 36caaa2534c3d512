package catalog

import (
	"strings"

	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

var ageGroups = map[string]bool{"": true, "child": true, "teen": true, "adult": true, "senior": true}

var genders = map[string]bool{"": true, "male": true, "female": true, "other": true}

func ValidateService(s *models.Service) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return ErrNameRequired
	}
	if s.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if s.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func ValidateClient(c *models.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Surname = strings.TrimSpace(c.Surname)
	c.Phone = strings.TrimSpace(c.Phone)

	if c.Name == "" {
		return ErrNameRequired
	}
	if c.Phone == "" {
		return ErrPhoneRequired
	}
	if !ageGroups[c.AgeGroup] {
		return ErrInvalidAgeGroup
	}
	if !genders[c.Gender] {
		return ErrInvalidGender
	}
	return nil
}

// ValidateSettings exige "HH:MM" com início antes do fim e timezone carregável.
func ValidateSettings(b *models.Barber) error {
	start, err := booking.ParseClock(b.WorkStartTime)
	if err != nil {
		return ErrInvalidWorkHours
	}
	end, err := booking.ParseClock(b.WorkEndTime)
	if err != nil || start >= end {
		return ErrInvalidWorkHours
	}
	b.WorkStartTime = booking.FormatClock(start)
	b.WorkEndTime = booking.FormatClock(end)

	if b.Timezone != "" && !timezone.IsValid(b.Timezone) {
		return ErrInvalidTimezone
	}
	return nil
}
