package sitesearch

import (
	"sort"
	"strings"
)

// RelatedPages returns up to limit records in the same locale as rec whose
// tags overlap with it, ranked by Jaccard similarity of lower-cased tags.
// Records sharing rec's path are excluded.
func RelatedPages(records []*Record, rec *Record, limit int) []*Record {
	if rec == nil || limit <= 0 {
		return nil
	}
	base := tagSet(rec.Tags)
	if len(base) == 0 {
		return nil
	}

	var results []Result
	for _, r := range records {
		if r.Path == rec.Path || r.Locale() != rec.Locale() {
			continue
		}
		if score := jaccard(base, tagSet(r.Tags)); score > 0 {
			results = append(results, Result{Record: r, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.Path < results[j].Record.Path
	})

	if len(results) > limit {
		results = results[:limit]
	}
	related := make([]*Record, len(results))
	for i, res := range results {
		related[i] = res.Record
	}
	return related
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var inter int
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(a)+len(b)-inter)
}
