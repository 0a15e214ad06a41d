package search

import (
	"slices"
	"sort"
	"strings"

	"github.com/mosaic-community/sitesearch"
)

// Score contributions.
const (
	scoreExactTitle  = 8
	scoreTitlePrefix = 6
	scoreTitleWord   = 5
	scoreHaystack    = 3
	scoreServicePath = 2
	scoreIntentExact = 6
	scoreIntentGroup = 3
	scoreMetaTag     = 2
	scoreFacet       = 4

	maxPriority = 10

	// maxFuzzyDistance is the largest edit distance accepted as a typo.
	maxFuzzyDistance = 2

	// maxFuzzyTerms caps how many near-miss tokens a query gains.
	maxFuzzyTerms = 5
)

// categoryWeights boosts records by editorial category.
var categoryWeights = map[string]float64{
	"Services":  8,
	"Programs":  5,
	"Resources": 3,
	"About":     1,
}

// Search returns the records relevant to query, best first. Records
// tagged with one of facets are boosted, not filtered.
func (c *Client) Search(query string, facets []string) []*sitesearch.Record {
	results := c.Rank(query, facets)
	records := make([]*sitesearch.Record, len(results))
	for i, r := range results {
		records[i] = r.Record
	}
	return records
}

// Rank is Search with the score of each record attached.
//
// Only records in the language detected from query are considered. Records
// scoring zero are omitted. Ties are ordered by path, then lang.
func (c *Client) Rank(query string, facets []string) []sitesearch.Result {
	q := sitesearch.NormalizeQuery(query)
	if q == "" {
		return []sitesearch.Result{}
	}
	st := c.state()
	candidates := inLanguage(st.items, sitesearch.DetectLanguage(query))

	terms := c.expand(q, st.synonyms, candidates)
	intents := queryIntents(terms, st.synonyms)

	results := []sitesearch.Result{}
	for _, rec := range candidates {
		score := scoreRecord(rec, terms, intents, st.metadata[rec.Path], facets)
		if score <= 0 {
			continue
		}
		results = append(results, sitesearch.Result{Record: rec, Score: score})
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Record.Path != b.Record.Path {
			return a.Record.Path < b.Record.Path
		}
		return a.Record.Locale() < b.Record.Locale()
	})
	return results
}

// expand returns the ordered, de-duplicated search terms for the
// normalized query q.
func (c *Client) expand(q string, synonyms sitesearch.Synonyms, candidates []*sitesearch.Record) []string {
	terms := newTermSet()
	terms.add(q)
	terms.add(c.rules.Expand(q)...)

	for _, intent := range sortedKeys(synonyms) {
		for _, phrase := range synonyms[intent] {
			p := strings.ToLower(strings.TrimSpace(phrase))
			if p == "" {
				continue
			}
			if strings.Contains(q, p) || strings.Contains(p, q) {
				terms.add(p)
			}
		}
	}

	variant := sitesearch.NormalizeDialect(q)
	terms.add(variant)
	terms.add(nearMisses(q, variant, vocabulary(candidates, false), maxFuzzyTerms)...)
	return terms.list
}

// scoreRecord sums every signal that applies to rec. Text signals are
// additive per term: a term that matches the title exactly also counts as
// a prefix, a substring and a haystack match.
func scoreRecord(rec *sitesearch.Record, terms []string, intents []string, meta *sitesearch.ServiceMeta, facets []string) float64 {
	title := strings.ToLower(rec.Title)
	haystack := strings.ToLower(rec.Title + " " + rec.Body + " " + strings.Join(rec.Tags, " "))

	var score float64
	for _, t := range terms {
		if title == t {
			score += scoreExactTitle
		}
		if strings.HasPrefix(title, t) {
			score += scoreTitlePrefix
		}
		if strings.Contains(title, t) {
			score += scoreTitleWord
		}
		if strings.Contains(haystack, t) {
			score += scoreHaystack
		}
	}

	if strings.HasPrefix(rec.Path, "/services") {
		score += scoreServicePath
	}

	if meta != nil {
		if meta.Priority != nil {
			score += min(max(*meta.Priority, 0), maxPriority)
		}
		score += categoryWeights[meta.Category]
		score += intentScore(meta.Intent, intents)
		for _, tag := range meta.Tags {
			if slices.Contains(terms, strings.ToLower(tag)) {
				score += scoreMetaTag
			}
		}
	}

	for _, f := range facets {
		if f != "" && rec.HasTag(f) {
			score += scoreFacet
		}
	}
	return score
}

// intentScore returns the best alignment between a record's intent and the
// intents recognized in a query.
func intentScore(recordIntent string, intents []string) float64 {
	if recordIntent == "" {
		return 0
	}
	var best float64
	for _, qi := range intents {
		switch {
		case qi == recordIntent:
			return scoreIntentExact
		case sameGroup(qi, recordIntent):
			best = scoreIntentGroup
		}
	}
	return best
}

// inLanguage returns the records whose locale is lang.
func inLanguage(items []*sitesearch.Record, lang string) []*sitesearch.Record {
	var out []*sitesearch.Record
	for _, r := range items {
		if r != nil && r.Locale() == lang {
			out = append(out, r)
		}
	}
	return out
}

// vocabulary returns the sorted distinct lower-cased tags of records plus
// either their title words or, when wholeTitles is set, their full titles.
func vocabulary(records []*sitesearch.Record, wholeTitles bool) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		for _, tag := range r.Tags {
			seen[strings.ToLower(tag)] = true
		}
		if wholeTitles {
			seen[strings.ToLower(r.Title)] = true
			continue
		}
		for _, w := range sitesearch.Tokenize(r.Title) {
			seen[w] = true
		}
	}
	delete(seen, "")
	return sortedKeys(seen)
}

// nearMisses returns up to limit vocabulary tokens within
// maxFuzzyDistance edits of q or its dialect variant, closest first.
func nearMisses(q, variant string, vocab []string, limit int) []string {
	type candidate struct {
		token    string
		distance int
	}
	var cands []candidate
	for _, tok := range vocab {
		d := sitesearch.Levenshtein(q, tok)
		if variant != q {
			d = min(d, sitesearch.Levenshtein(variant, tok))
		}
		if d <= maxFuzzyDistance {
			cands = append(cands, candidate{token: tok, distance: d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].distance != cands[j].distance {
			return cands[i].distance < cands[j].distance
		}
		return cands[i].token < cands[j].token
	})
	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.token
	}
	return out
}

// termSet is an insertion-ordered set of non-empty strings.
type termSet struct {
	list []string
	seen map[string]bool
}

func newTermSet() *termSet {
	return &termSet{seen: make(map[string]bool)}
}

func (s *termSet) add(terms ...string) {
	for _, t := range terms {
		if t == "" || s.seen[t] {
			continue
		}
		s.seen[t] = true
		s.list = append(s.list, t)
	}
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
