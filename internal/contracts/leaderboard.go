package contracts

// LeaderboardEntry is one ranked row. Ranks are 1-based and dense.
type LeaderboardEntry[T any] struct {
	Rank  int   `json:"rank"`
	Value int64 `json:"value"`
	Model T     `json:"model"`
}

// LeaderboardContract holds the four independent rankings
type LeaderboardContract struct {
	MostGoldCategories []LeaderboardEntry[CategoryContract] `json:"mostGoldCategories"`
	MostGoldPhotos     []LeaderboardEntry[PhotoContract]    `json:"mostGoldPhotos"`
	MostGoldUsers      []LeaderboardEntry[UserContract]     `json:"mostGoldUsers"`
	MostGivingUsers    []LeaderboardEntry[UserContract]     `json:"mostGivingUsers"`
}

// Rank assigns dense 1-based ranks to items already sorted by descending value
// and truncates the result to limit entries.
func Rank[T any](items []T, value func(T) int64, limit int) []LeaderboardEntry[T] {
	if limit < 0 {
		limit = 0
	}
	if limit > len(items) {
		limit = len(items)
	}

	entries := make([]LeaderboardEntry[T], 0, limit)
	rank := 0
	var previous int64
	for i := 0; i < limit; i++ {
		v := value(items[i])
		if i == 0 || v != previous {
			rank++
			previous = v
		}
		entries = append(entries, LeaderboardEntry[T]{Rank: rank, Value: v, Model: items[i]})
	}
	return entries
}
