package brackets

import (
	"time"

	"github.com/Dosada05/bracket-editor/models"
)

const DefaultMatchDuration = 45 * time.Minute

// NextScheduleStart rounds now up to the next full hour.
func NextScheduleStart(now time.Time) time.Time {
	return now.Truncate(time.Hour).Add(time.Hour)
}

// AutoSchedule returns a copy of b where matches are scheduled back to back
// from start, one every slot: upper rounds first, then lower rounds, then
// the grand final.
func AutoSchedule(b *models.DoubleEliminationBracket, start time.Time, slot time.Duration) *models.DoubleEliminationBracket {
	next := b.Clone()
	for i, m := range next.Matches() {
		at := start.Add(time.Duration(i) * slot)
		m.ScheduledAt = &at
	}
	return next
}
