package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status BookingStatus
		want   []BookingStatus
	}{
		{"requested offers approve and reject", StatusRequested, []BookingStatus{StatusApproved, StatusRejected}},
		{"approved offers completion", StatusApproved, []BookingStatus{StatusCompleted}},
		{"rejected is terminal", StatusRejected, nil},
		{"completed is terminal", StatusCompleted, nil},
		{"unknown server status offers nothing", BookingStatus("CANCELLED"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.NextStatuses())
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusRequested.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCompleted.Terminal())

	// Unknown statuses are not terminal; they are simply not recognized.
	assert.False(t, BookingStatus("ACTIVE").Terminal())
}

func TestKnown(t *testing.T) {
	assert.True(t, StatusRequested.Known())
	assert.True(t, StatusCompleted.Known())
	assert.False(t, BookingStatus("ACTIVE").Known())
	assert.False(t, BookingStatus("").Known())
}

func TestTransitionLabel(t *testing.T) {
	assert.Equal(t, "Approve", TransitionLabel(StatusApproved))
	assert.Equal(t, "Reject", TransitionLabel(StatusRejected))
	assert.Equal(t, "Mark Completed", TransitionLabel(StatusCompleted))
	assert.Equal(t, "REQUESTED", TransitionLabel(StatusRequested))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcd1234", Booking{ID: "abcd1234-ef56-7890"}.ShortID())
	assert.Equal(t, "short", Booking{ID: "short"}.ShortID())
}
