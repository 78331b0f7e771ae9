package activity

import "sort"

// LanguageStat is one language's share of a repository set.
type LanguageStat struct {
	Name       string
	Count      int
	Percentage float64
}

// LanguageStats counts how often each language appears across repositories.
// Repositories without a language are excluded from both the counts and the
// percentage denominator. Sorted by count descending, then name.
func LanguageStats(languages []string) []LanguageStat {
	counts := make(map[string]int)
	total := 0
	for _, lang := range languages {
		if lang == "" {
			continue
		}
		counts[lang]++
		total++
	}

	stats := make([]LanguageStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, LanguageStat{
			Name:       name,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// LanguageRank is one language's score in a score-ranked listing.
type LanguageRank struct {
	Name  string
	Score int
}

// RankLanguages orders per-language scores descending, then by name.
func RankLanguages(scores map[string]int) []LanguageRank {
	ranks := make([]LanguageRank, 0, len(scores))
	for name, score := range scores {
		ranks = append(ranks, LanguageRank{Name: name, Score: score})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Score != ranks[j].Score {
			return ranks[i].Score > ranks[j].Score
		}
		return ranks[i].Name < ranks[j].Name
	})
	return ranks
}
