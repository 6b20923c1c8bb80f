// Package feed implements the notification reducer: typed entries from
// several sources fold into one per-user map keyed by source identifier,
// then flatten into a single chronologically sorted list. Keeping the merge
// pure makes it testable independent of the event transport.
package feed

import (
	"sort"

	"pinesvet/internal/domain/entity"
)

// Feed accumulates notification entries for one user. Applying an entry
// with a key that is already present overwrites it in place, so replayed
// events never duplicate.
type Feed struct {
	entries map[string]entity.FeedEntry
}

// New creates an empty feed.
func New() *Feed {
	return &Feed{entries: make(map[string]entity.FeedEntry)}
}

// Apply upserts one entry by its source key.
func (f *Feed) Apply(entry entity.FeedEntry) {
	f.entries[entry.SourceKey] = entry
}

// ApplyAll upserts a batch of entries.
func (f *Feed) ApplyAll(entries []entity.FeedEntry) {
	for _, entry := range entries {
		f.Apply(entry)
	}
}

// Remove drops the entry with the given source key, if present.
func (f *Feed) Remove(sourceKey string) {
	delete(f.entries, sourceKey)
}

// Len returns the number of distinct entries.
func (f *Feed) Len() int {
	return len(f.entries)
}

// Sorted flattens the feed descending by timestamp. Entries with equal
// timestamps order by source key so the result is deterministic.
func (f *Feed) Sorted() []entity.FeedEntry {
	out := make([]entity.FeedEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}

		return out[i].SourceKey < out[j].SourceKey
	})

	return out
}

// Unread counts entries not yet marked read.
func (f *Feed) Unread() int {
	count := 0
	for _, entry := range f.entries {
		if !entry.Read {
			count++
		}
	}

	return count
}

// SoundCue reports whether the client should play the notification sound:
// only when the unread count strictly increased since the last observation,
// and only when the user has sound enabled.
func SoundCue(previousUnread, currentUnread int, soundEnabled bool) bool {
	return soundEnabled && currentUnread > previousUnread
}
