package feed

import (
	"testing"
	"time"

	"pinesvet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func entryAt(key string, ts time.Time, read bool) entity.FeedEntry {
	return entity.FeedEntry{
		SourceKey: key,
		UserID:    uuid.Nil,
		Source:    entity.FeedSourceAppointment,
		Title:     "title " + key,
		Read:      read,
		Timestamp: ts,
	}
}

func TestFeed_ApplyIsIdempotentPerKey(t *testing.T) {
	f := New()
	base := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

	first := entryAt("appointment-1", base, false)
	f.Apply(first)
	// The same source key arriving again overwrites rather than duplicates.
	second := first
	second.Title = "updated"
	f.Apply(second)

	assert.Equal(t, 1, f.Len())
	assert.Equal(t, "updated", f.Sorted()[0].Title)
}

func TestFeed_SortedDescendingByTimestamp(t *testing.T) {
	f := New()
	base := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

	f.ApplyAll([]entity.FeedEntry{
		entryAt("order-1", base.Add(-time.Hour), false),
		entryAt("appointment-1", base.Add(time.Hour), false),
		entryAt("care-plan-1", base, false),
	})

	sorted := f.Sorted()
	assert.Equal(t, []string{"appointment-1", "care-plan-1", "order-1"}, []string{
		sorted[0].SourceKey, sorted[1].SourceKey, sorted[2].SourceKey,
	})
}

func TestFeed_SortedTieBreaksOnKey(t *testing.T) {
	f := New()
	ts := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

	f.Apply(entryAt("b", ts, false))
	f.Apply(entryAt("a", ts, false))

	sorted := f.Sorted()
	assert.Equal(t, "a", sorted[0].SourceKey)
	assert.Equal(t, "b", sorted[1].SourceKey)
}

func TestFeed_Unread(t *testing.T) {
	f := New()
	ts := time.Now()

	f.Apply(entryAt("a", ts, false))
	f.Apply(entryAt("b", ts, true))
	f.Apply(entryAt("c", ts, false))

	assert.Equal(t, 2, f.Unread())

	// Re-applying an entry as read flips the count down.
	f.Apply(entryAt("a", ts, true))
	assert.Equal(t, 1, f.Unread())
}

func TestFeed_Remove(t *testing.T) {
	f := New()
	ts := time.Now()

	f.Apply(entryAt("a", ts, false))
	f.Apply(entryAt("b", ts, false))

	f.Remove("a")
	// Removing an unknown key is a no-op.
	f.Remove("missing")

	assert.Equal(t, 1, f.Len())
	assert.Equal(t, "b", f.Sorted()[0].SourceKey)
}

func TestSoundCue(t *testing.T) {
	tests := []struct {
		name         string
		prev, cur    int
		soundEnabled bool
		want         bool
	}{
		{name: "strict increase with sound on", prev: 1, cur: 2, soundEnabled: true, want: true},
		{name: "strict increase with sound off", prev: 1, cur: 2, soundEnabled: false, want: false},
		{name: "no change", prev: 2, cur: 2, soundEnabled: true, want: false},
		{name: "decrease", prev: 3, cur: 1, soundEnabled: true, want: false},
		{name: "from zero", prev: 0, cur: 1, soundEnabled: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SoundCue(tt.prev, tt.cur, tt.soundEnabled))
		})
	}
}
