// Package timeline computes which annotations to surface for a playback
// position.
//
// Every function is a pure computation over the snapshot it is given. The
// caller samples the player and re-fetches annotations after mutations; this
// package keeps no state between calls and never modifies its input.
package timeline

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"youact-backend/internal/models"
)

// Entry is one marker on the full timeline overview.
type Entry struct {
	AnnotationID uuid.UUID
	Timestamp    int
	Clock        string
	Label        string
	// Active is display-only: the marker's time has been reached.
	Active bool
}

// View bundles the visible set and the overview for one playback sample.
type View struct {
	CurrentTime int
	Visible     []models.Annotation
	Overview    []Entry
}

// Compute returns the VisibleAt and Overview results for currentTime.
func Compute(annotations []models.Annotation, currentTime int) View {
	return View{
		CurrentTime: currentTime,
		Visible:     VisibleAt(annotations, currentTime),
		Overview:    Overview(annotations, currentTime),
	}
}

// VisibleAt returns the annotations whose timestamp is at or before
// currentTime, most recently triggered first. Equal timestamps are ordered
// newest creation first.
func VisibleAt(annotations []models.Annotation, currentTime int) []models.Annotation {
	visible := make([]models.Annotation, 0, len(annotations))
	for _, a := range annotations {
		if a.Timestamp <= currentTime {
			visible = append(visible, a)
		}
	}
	slices.SortStableFunc(visible, func(a, b models.Annotation) int {
		return compareChronological(b, a)
	})
	return visible
}

// Overview lists every annotation in ascending timeline order regardless of
// currentTime, flagging the ones already reached.
func Overview(annotations []models.Annotation, currentTime int) []Entry {
	ordered := slices.Clone(annotations)
	slices.SortStableFunc(ordered, compareChronological)

	entries := make([]Entry, len(ordered))
	for i := range ordered {
		a := &ordered[i]
		entries[i] = Entry{
			AnnotationID: a.ID,
			Timestamp:    a.Timestamp,
			Clock:        FormatClock(a.Timestamp),
			Label:        a.Label(),
			Active:       a.Timestamp <= currentTime,
		}
	}
	return entries
}

// Sort orders annotations in place by timestamp, then creation order. This is
// the canonical order returned by annotation listings.
func Sort(annotations []models.Annotation) {
	slices.SortStableFunc(annotations, compareChronological)
}

// FormatClock renders seconds as m:ss, e.g. 75 -> "1:15".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func compareChronological(a, b models.Annotation) int {
	return cmp.Or(
		cmp.Compare(a.Timestamp, b.Timestamp),
		a.CreatedAt.Compare(b.CreatedAt),
		cmp.Compare(a.Seq, b.Seq),
	)
}
