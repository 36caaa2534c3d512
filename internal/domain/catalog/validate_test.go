package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func TestValidateService(t *testing.T) {
	tests := []struct {
		name string
		in   models.Service
		want error
	}{
		{"ok", models.Service{Name: " Fade ", DurationMinutes: 30, Price: 120}, nil},
		{"blank name", models.Service{Name: "  ", DurationMinutes: 30, Price: 120}, ErrNameRequired},
		{"zero duration", models.Service{Name: "Fade", Price: 120}, ErrInvalidDuration},
		{"negative duration", models.Service{Name: "Fade", DurationMinutes: -5, Price: 120}, ErrInvalidDuration},
		{"zero price", models.Service{Name: "Fade", DurationMinutes: 30}, ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			err := ValidateService(&s)
			if tt.want == nil {
				require.NoError(t, err)
				assert.Equal(t, "Fade", s.Name)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateClient(t *testing.T) {
	ok := models.Client{Name: "Thabo", Phone: "0821234567", AgeGroup: "adult", Gender: "male"}
	assert.NoError(t, ValidateClient(&ok))

	assert.ErrorIs(t, ValidateClient(&models.Client{Phone: "1"}), ErrNameRequired)
	assert.ErrorIs(t, ValidateClient(&models.Client{Name: "A"}), ErrPhoneRequired)
	assert.ErrorIs(t, ValidateClient(&models.Client{Name: "A", Phone: "1", AgeGroup: "baby"}), ErrInvalidAgeGroup)
	assert.ErrorIs(t, ValidateClient(&models.Client{Name: "A", Phone: "1", Gender: "x"}), ErrInvalidGender)
}

func TestValidateSettings(t *testing.T) {
	b := models.Barber{WorkStartTime: "8:00", WorkEndTime: "18:00", Timezone: "Africa/Johannesburg"}
	require.NoError(t, ValidateSettings(&b))
	assert.Equal(t, "08:00", b.WorkStartTime)

	assert.ErrorIs(t, ValidateSettings(&models.Barber{WorkStartTime: "18:00", WorkEndTime: "08:00"}), ErrInvalidWorkHours)
	assert.ErrorIs(t, ValidateSettings(&models.Barber{WorkStartTime: "x", WorkEndTime: "08:00"}), ErrInvalidWorkHours)
	assert.ErrorIs(t, ValidateSettings(&models.Barber{WorkStartTime: "08:00", WorkEndTime: "17:00", Timezone: "Mars/Base"}), ErrInvalidTimezone)
}
