package screening

import "sort"

// Rank orders results by score descending. The sort is stable: candidates
// with equal scores keep their relative submission order, which makes a
// repeated run over the same batch byte-identical.
func Rank(results []ScoreResult) []ScoreResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
