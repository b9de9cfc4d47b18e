package clock

import (
	"cmp"
	"slices"
)

type QuadrantRanking struct {
	FavoriteByReturn []string `json:"favoriteByReturn"`
	UnfavoriteByReturn []string `json:"unfavoriteByReturn"`
	FavoriteByDrawdown []string `json:"favoriteByDrawdown"`
	UnfavoriteByDrawdown []string `json:"unfavoriteByDrawdown"`
}

type rankedEntry struct {
	symbol string
	value float64
}

// Favorite/unfavorite lists of at most breadth entries per metric. Returns
// rank descending (higher is better), drawdowns rank ascending in severity
// (closest to zero is better). Ties break by symbol.
func rankInstruments(avgReturn, avgDrawdown map[string]float64, breadth int) QuadrantRanking {
	byReturn := sortedEntries(avgReturn, func (a, b rankedEntry) int {
		return cmp.Compare(b.value, a.value)
	})
	byDrawdown := sortedEntries(avgDrawdown, func (a, b rankedEntry) int {
		return cmp.Compare(b.value, a.value)
	})
	ranking := QuadrantRanking{}
	ranking.FavoriteByReturn, ranking.UnfavoriteByReturn = headTail(byReturn, breadth)
	ranking.FavoriteByDrawdown, ranking.UnfavoriteByDrawdown = headTail(byDrawdown, breadth)
	return ranking
}

func sortedEntries(values map[string]float64, compare func (a, b rankedEntry) int) []rankedEntry {
	entries := make([]rankedEntry, 0, len(values))
	for symbol, value := range values {
		entries = append(entries, rankedEntry{
			symbol: symbol,
			value: value,
		})
	}
	slices.SortFunc(entries, func (a, b rankedEntry) int {
		order := compare(a, b)
		if order != 0 {
			return order
		}
		return cmp.Compare(a.symbol, b.symbol)
	})
	return entries
}

func headTail(entries []rankedEntry, breadth int) ([]string, []string) {
	n := min(breadth, len(entries))
	head := make([]string, 0, n)
	for _, entry := range entries[:n] {
		head = append(head, entry.symbol)
	}
	tail := make([]string, 0, n)
	for _, entry := range entries[len(entries) - n:] {
		tail = append(tail, entry.symbol)
	}
	return head, tail
}
