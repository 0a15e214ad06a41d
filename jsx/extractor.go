// Package jsx extracts searchable text from React page sources (.tsx/.jsx)
// without evaluating them. Extraction is intentionally approximate: it
// favors recall over a clean rendering of the page.
package jsx

import (
	"regexp"
	"strings"

	"github.com/mosaic-community/sitesearch"
)

// Ensure Extractor implements sitesearch.Extractor at compile time.
var _ sitesearch.Extractor = (*Extractor)(nil)

var (
	documentTitleRe = regexp.MustCompile(`document\.title\s*=\s*(?:"([^"]*)"|'([^']*)'|` + "`([^`]*)`)")
	titleTagRe      = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	h1Re            = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	tagRe           = regexp.MustCompile(`<[^>]*>`)
	expressionRe    = regexp.MustCompile(`\{[^{}]*\}`)
	textRe          = regexp.MustCompile(`>([^<>]+)<`)
	literalRe       = regexp.MustCompile(`"([^"\n]*)"|'([^'\n]*)'`)
	letterRe        = regexp.MustCompile(`\pL`)
	wordCharRe      = regexp.MustCompile(`[\pL\pN]`)
	spaceRe         = regexp.MustCompile(`\s+`)
)

// Extractor extracts titles and body text from JSX source.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and a de-duplicated bag of inline text
// fragments and string literals.
func (e *Extractor) Extract(markup string) (*sitesearch.ExtractResult, error) {
	return &sitesearch.ExtractResult{
		Title: extractTitle(markup),
		Body:  extractBody(markup),
	}, nil
}

// extractTitle prefers an explicit document title, then <title>, then the
// first <h1>.
func extractTitle(src string) string {
	if m := documentTitleRe.FindStringSubmatch(src); m != nil {
		if t := clean(m[1] + m[2] + m[3]); t != "" {
			return t
		}
	}
	if m := titleTagRe.FindStringSubmatch(src); m != nil {
		if t := clean(m[1]); t != "" {
			return t
		}
	}
	if m := h1Re.FindStringSubmatch(src); m != nil {
		return clean(m[1])
	}
	return ""
}

func extractBody(src string) string {
	var fragments []string
	seen := make(map[string]bool)
	add := func(s string, keep *regexp.Regexp) {
		s = clean(s)
		if s == "" || !keep.MatchString(s) || seen[s] {
			return
		}
		seen[s] = true
		fragments = append(fragments, s)
	}

	// Text fragments only need a word character; string literals must hold
	// a letter to keep out keys, numbers and class lists of symbols.
	for _, m := range textRe.FindAllStringSubmatch(src, -1) {
		add(m[1], wordCharRe)
	}
	for _, m := range literalRe.FindAllStringSubmatch(src, -1) {
		add(m[1]+m[2], letterRe)
	}

	return strings.Join(fragments, " ")
}

// clean removes markup and {expressions} from a fragment and collapses
// whitespace.
func clean(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = expressionRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
