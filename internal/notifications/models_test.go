package notifications

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeIsValid(t *testing.T) {
	assert.True(t, EventBookingConfirmed.IsValid())
	assert.True(t, EventBookingCancelled.IsValid())
	assert.False(t, EventType("booking.rescheduled").IsValid())
}

func TestPartitionKeyIsCourtScoped(t *testing.T) {
	courtID := uuid.New()
	confirmed := BookingEvent{Type: EventBookingConfirmed, CourtID: courtID}
	cancelled := BookingEvent{Type: EventBookingCancelled, CourtID: courtID}

	assert.Equal(t, confirmed.PartitionKey(), cancelled.PartitionKey())
}

func TestEmailTemplatesRender(t *testing.T) {
	event := &BookingEvent{
		Type:          EventBookingConfirmed,
		BookingRef:    "PBX-20260314-ABCDEF",
		VenueName:     "Turf Arena",
		Sport:         "football",
		StartTime:     time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		DurationHours: 2,
		Amount:        2400,
	}

	var body bytes.Buffer
	require.NoError(t, confirmedTemplate.Execute(&body, event))
	assert.Contains(t, body.String(), "PBX-20260314-ABCDEF")
	assert.Contains(t, body.String(), "Turf Arena")
	assert.Contains(t, body.String(), "2400.00")

	body.Reset()
	require.NoError(t, cancelledTemplate.Execute(&body, event))
	assert.Contains(t, body.String(), "cancelled")
}
