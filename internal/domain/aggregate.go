package domain

import (
	"sort"
	"time"
)

// Aggregate replays records and returns total occupancy per player in whole
// minutes for the window [windowStart, windowEnd]. Records are replayed in
// timestamp order (a stable sort is applied, so ties keep arrival order).
//
// Replay policy:
//   - A join opens a session. A second join with no intervening exit closes
//     the stale session at the new join's timestamp before reopening, so the
//     earlier interval is never silently lost.
//   - An exit closes the open session and credits the elapsed minutes. An
//     exit with no open session is discarded.
//   - Sessions still open after the last record are credited up to windowEnd.
//
// Minutes are truncated at every credit step, and negative deltas clamp to
// zero. Players whose accumulated total is zero are omitted. Malformed
// sequences never produce an error. The window lower bound is enforced by
// the range query that produced records; windowEnd clips open sessions.
func Aggregate(records []ActivityRecord, windowStart, windowEnd time.Time) map[string]int {
	sorted := make([]ActivityRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	totals := make(map[string]int)
	open := make(map[string]time.Time)

	credit := func(playerID string, from, to time.Time) {
		if minutes := wholeMinutes(from, to); minutes > 0 {
			totals[playerID] += minutes
		}
	}

	for _, record := range sorted {
		switch record.Action {
		case ActionJoin:
			if startedAt, ok := open[record.PlayerID]; ok {
				// Duplicate join: treat it as an implicit exit of the
				// stale session.
				credit(record.PlayerID, startedAt, record.Timestamp)
			}
			open[record.PlayerID] = record.Timestamp
		case ActionExit:
			startedAt, ok := open[record.PlayerID]
			if !ok {
				// No matching join in the window; nothing to credit.
				continue
			}
			credit(record.PlayerID, startedAt, record.Timestamp)
			delete(open, record.PlayerID)
		}
	}

	// Players still present accrue partial credit up to the window end.
	for playerID, startedAt := range open {
		credit(playerID, startedAt, windowEnd)
	}

	return totals
}

// wholeMinutes returns the elapsed whole minutes from one instant to a later
// one, truncating fractional minutes and clamping negative spans to zero.
func wholeMinutes(from, to time.Time) int {
	elapsed := to.Sub(from)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}
