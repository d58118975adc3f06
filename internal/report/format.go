// Package report builds and delivers the ranked occupancy reports.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// NameResolver maps a player id to a display name for presentation.
type NameResolver func(playerID string) string

// FormatRanking renders a ranking of occupancy minutes as a multi-line text
// block. Entries are sorted by minutes descending; ties break by player id
// ascending so the ordering is deterministic. Inputs are never mutated.
func FormatRanking(title string, durations map[string]int, resolve NameResolver) string {
	type entry struct {
		playerID string
		minutes  int
	}

	entries := make([]entry, 0, len(durations))
	for playerID, minutes := range durations {
		entries = append(entries, entry{playerID: playerID, minutes: minutes})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].minutes != entries[j].minutes {
			return entries[i].minutes > entries[j].minutes
		}
		return entries[i].playerID < entries[j].playerID
	})

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("：\n")
	for rank, e := range entries {
		fmt.Fprintf(&b, "%d. %s: %d時間%d分\n", rank+1, resolve(e.playerID), e.minutes/60, e.minutes%60)
	}
	return b.String()
}
