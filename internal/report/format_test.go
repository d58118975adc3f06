package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func namesFromMap(names map[string]string) NameResolver {
	return func(playerID string) string {
		if name, ok := names[playerID]; ok {
			return name
		}
		return "不明なプレイヤー"
	}
}

func TestFormatRankingHoursAndMinutes(t *testing.T) {
	message := FormatRanking("本日の入室時間ランキング", map[string]int{"u1": 125}, namesFromMap(map[string]string{"u1": "Alice"}))
	require.Equal(t, "本日の入室時間ランキング：\n1. Alice: 2時間5分\n", message)
}

func TestFormatRankingSortsByMinutesDescending(t *testing.T) {
	durations := map[string]int{"u1": 30, "u2": 90, "u3": 60}
	resolve := namesFromMap(map[string]string{"u1": "Alice", "u2": "Bob", "u3": "Carol"})

	message := FormatRanking("今週の入室時間ランキング", durations, resolve)
	require.Equal(t, "今週の入室時間ランキング：\n1. Bob: 1時間30分\n2. Carol: 1時間0分\n3. Alice: 0時間30分\n", message)
}

func TestFormatRankingTieBreaksByPlayerID(t *testing.T) {
	durations := map[string]int{"u2": 60, "u1": 60}
	resolve := namesFromMap(map[string]string{"u1": "Alice", "u2": "Bob"})

	message := FormatRanking("title", durations, resolve)
	require.Equal(t, "title：\n1. Alice: 1時間0分\n2. Bob: 1時間0分\n", message)
}

func TestFormatRankingUnknownPlayerPlaceholder(t *testing.T) {
	message := FormatRanking("title", map[string]int{"ghost": 5}, namesFromMap(nil))
	require.Equal(t, "title：\n1. 不明なプレイヤー: 0時間5分\n", message)
}

func TestFormatRankingEmptyDurations(t *testing.T) {
	message := FormatRanking("title", nil, namesFromMap(nil))
	require.Equal(t, "title：\n", message)
}
