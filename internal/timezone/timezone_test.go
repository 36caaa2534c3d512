package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Africa/Johannesburg", Location("").String())
	assert.Equal(t, "Africa/Johannesburg", Location("Not/AZone").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	var c Clock = FixedClock{At: at}

	assert.Equal(t, at, c.Now())
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
}
