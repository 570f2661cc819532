package venues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOperatingWindow(t *testing.T) {
	tests := []struct {
		name      string
		openHour  int
		closeHour int
		wantErr   bool
	}{
		{"standard day", 6, 23, false},
		{"full day", 0, 23, false},
		{"single hour", 10, 11, false},
		{"open equals close", 10, 10, true},
		{"open after close", 18, 9, true},
		{"negative open", -1, 10, true},
		{"close past midnight", 6, 25, true},
		{"zero close", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOperatingWindow(tt.openHour, tt.closeHour)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOperatingWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	assert.NoError(t, validateTimezone("Asia/Kolkata"))
	assert.NoError(t, validateTimezone("UTC"))
	assert.NoError(t, validateTimezone("America/New_York"))

	assert.ErrorIs(t, validateTimezone("Mars/Olympus"), ErrInvalidTimezone)
	assert.ErrorIs(t, validateTimezone("IST"), ErrInvalidTimezone)
}

func TestVenueToResponse(t *testing.T) {
	venue := Venue{
		Name:      "Turf Arena",
		City:      "Mumbai",
		Timezone:  "Asia/Kolkata",
		OpenHour:  6,
		CloseHour: 23,
		SportPrices: []SportPrice{
			{Sport: "football", PricePerHour: 1200},
			{Sport: "cricket", PricePerHour: 1500},
		},
		Courts: []Court{
			{Sport: "football", Name: "Turf 1", IsActive: true},
		},
	}

	resp := venue.ToResponse()

	assert.Equal(t, []string{"football", "cricket"}, resp.Sports)
	assert.Len(t, resp.SportPrices, 2)
	assert.Equal(t, 1200.0, resp.SportPrices[0].PricePerHour)
	assert.Len(t, resp.Courts, 1)
	assert.Equal(t, "Turf 1", resp.Courts[0].Name)
}
