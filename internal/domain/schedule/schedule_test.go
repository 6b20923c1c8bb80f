package schedule

import (
	"testing"
	"time"

	"pinesvet/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotsWithLabels(labels ...string) []*entity.TimeSlot {
	slots := make([]*entity.TimeSlot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, &entity.TimeSlot{Label: label})
	}

	return slots
}

func labelsOf(slots []*entity.TimeSlot) []string {
	labels := make([]string, 0, len(slots))
	for _, slot := range slots {
		labels = append(labels, slot.Label)
	}

	return labels
}

func TestSortSlots_ByTimeOfDay(t *testing.T) {
	slots := slotsWithLabels("9:00 PM", "1:00 AM", "11:30 AM")

	SortSlots(slots)

	assert.Equal(t, []string{"1:00 AM", "11:30 AM", "9:00 PM"}, labelsOf(slots))
}

func TestSortSlots_UnparseableLabelsSortLast(t *testing.T) {
	slots := slotsWithLabels("lunchtime", "8:00 AM", "2:30 PM")

	SortSlots(slots)

	assert.Equal(t, []string{"8:00 AM", "2:30 PM", "lunchtime"}, labelsOf(slots))
}

func TestCombine(t *testing.T) {
	date := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)

	scheduledAt, label, err := Combine(date, "2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 9, 14, 30, 0, 0, time.UTC), scheduledAt)
	assert.Equal(t, "Jun 9, 2025, 2:30 PM", label)
}

func TestCombine_InvalidLabel(t *testing.T) {
	_, _, err := Combine(time.Now(), "half past nine")
	assert.Error(t, err)
}

func TestValidateNotPast(t *testing.T) {
	now := time.Date(2025, time.June, 9, 15, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, ValidateNotPast(now.AddDate(0, 0, -1), now), ErrPastDate)
	// Same-day bookings are allowed even after midnight.
	assert.NoError(t, ValidateNotPast(time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), now))
	assert.NoError(t, ValidateNotPast(now.AddDate(0, 0, 1), now))
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, time.June, 9, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		status      entity.AppointmentStatus
		scheduledAt time.Time
		want        entity.AppointmentStatus
	}{
		{name: "confirmed in past reads concluded", status: entity.AppointmentStatusConfirmed, scheduledAt: now.Add(-time.Hour), want: entity.AppointmentStatusConcluded},
		{name: "confirmed in future stays confirmed", status: entity.AppointmentStatusConfirmed, scheduledAt: now.Add(time.Hour), want: entity.AppointmentStatusConfirmed},
		{name: "pending in past stays pending", status: entity.AppointmentStatusPending, scheduledAt: now.Add(-time.Hour), want: entity.AppointmentStatusPending},
		{name: "cancelled stays cancelled", status: entity.AppointmentStatusCancelled, scheduledAt: now.Add(-time.Hour), want: entity.AppointmentStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &entity.Appointment{Status: tt.status, ScheduledAt: tt.scheduledAt}
			assert.Equal(t, tt.want, DeriveStatus(a, now))
		})
	}
}
