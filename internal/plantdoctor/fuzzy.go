package plantdoctor

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// FuzzyCutoff is the minimum similarity ratio a key needs to be accepted.
const FuzzyCutoff = 0.4

type scoredKey struct {
	key   string
	score float64
}

// closeMatches returns up to limit keys whose Ratcliff/Obershelp similarity to
// word is at least cutoff, best first. Equal scores keep the larger key first.
func closeMatches(word string, keys []string, limit int, cutoff float64) []string {
	if limit <= 0 {
		return nil
	}

	matcher := difflib.NewMatcher(nil, characters(word))
	scored := make([]scoredKey, 0)
	for _, key := range keys {
		matcher.SetSeq1(characters(key))
		if matcher.RealQuickRatio() < cutoff || matcher.QuickRatio() < cutoff {
			continue
		}
		if score := matcher.Ratio(); score >= cutoff {
			scored = append(scored, scoredKey{key: key, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].key > scored[j].key
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	result := make([]string, len(scored))
	for index, match := range scored {
		result[index] = match.key
	}
	return result
}

func characters(value string) []string {
	return strings.Split(value, "")
}
