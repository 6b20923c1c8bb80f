// Package schedule holds the pure scheduling rules shared by the booking
// flow and the admin views: slot label parsing and ordering, composite date
// labels, past-date checks and the single read-boundary mapper that derives
// the display-only Concluded status.
package schedule

import (
	"sort"
	"strings"
	"time"

	"pinesvet/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	// DateLabelLayout is the composite display format persisted on
	// appointments, e.g. "Jan 2, 2006, 3:04 PM".
	DateLabelLayout = "Jan 2, 2006, 3:04 PM"

	// SlotLabelLayout is the time-of-day format of catalog slot labels.
	SlotLabelLayout = "3:04 PM"

	// DateKeyLayout is the calendar-date key used for slot reservations.
	DateKeyLayout = "2006-01-02"
)

// ErrPastDate is returned when a booking targets a date that already passed.
var ErrPastDate = errors.New("appointment date is in the past")

// ParseSlotLabel parses a catalog slot label ("9:00 AM") into a time of day
// anchored on the zero reference date, for ordering purposes only.
func ParseSlotLabel(label string) (time.Time, error) {
	t, err := time.Parse(SlotLabelLayout, strings.TrimSpace(label))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid slot label %q", label)
	}

	return t, nil
}

// SortSlots orders a slot catalog ascending by parsed time of day.
// Slots with unparseable labels sort last; the sort is stable so catalog
// order is preserved among equals.
func SortSlots(slots []*entity.TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		ti, errI := ParseSlotLabel(slots[i].Label)
		tj, errJ := ParseSlotLabel(slots[j].Label)
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}

		return ti.Before(tj)
	})
}

// Combine merges a calendar date and a slot label into the scheduled instant
// and its composite display label.
func Combine(date time.Time, slotLabel string) (scheduledAt time.Time, dateLabel string, err error) {
	tod, err := ParseSlotLabel(slotLabel)
	if err != nil {
		return time.Time{}, "", err
	}

	year, month, day := date.Date()
	scheduledAt = time.Date(year, month, day, tod.Hour(), tod.Minute(), 0, 0, date.Location())

	return scheduledAt, scheduledAt.Format(DateLabelLayout), nil
}

// DateKey formats a calendar date as the reservation key.
func DateKey(date time.Time) string {
	return date.Format(DateKeyLayout)
}

// ValidateNotPast rejects booking dates before the current day. Bookings on
// the current day are allowed; slot-level collisions are handled by the
// reservation claim.
func ValidateNotPast(date, now time.Time) error {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(startOfToday) {
		return ErrPastDate
	}

	return nil
}

// DeriveStatus maps a persisted appointment status to its display status:
// a Confirmed appointment whose scheduled time has passed reads as
// Concluded. The derived value is never written back.
func DeriveStatus(a *entity.Appointment, now time.Time) entity.AppointmentStatus {
	if a.Status == entity.AppointmentStatusConfirmed && a.ScheduledAt.Before(now) {
		return entity.AppointmentStatusConcluded
	}

	return a.Status
}
