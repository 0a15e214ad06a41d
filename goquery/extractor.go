// Package goquery extracts searchable text from rendered HTML pages.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mosaic-community/sitesearch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitesearch.Extractor at compile time.
var _ sitesearch.Extractor = (*Extractor)(nil)

// Attributes whose values are human-readable text.
var textAttributes = []string{"alt", "title", "placeholder", "aria-label"}

// Elements whose text is never visible.
var hiddenElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"svg":      true,
}

var (
	letterRe   = regexp.MustCompile(`\pL`)
	wordCharRe = regexp.MustCompile(`[\pL\pN]`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// Extractor extracts titles and body text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document title (or first <h1>) and a de-duplicated
// bag of visible text nodes plus text-bearing attribute values.
func (e *Extractor) Extract(markup string) (*sitesearch.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}

	title := collapse(doc.Find("title").First().Text())
	if title == "" {
		title = collapse(doc.Find("h1").First().Text())
	}

	var fragments []string
	seen := make(map[string]bool)
	add := func(s string, keep *regexp.Regexp) {
		s = collapse(s)
		if s == "" || !keep.MatchString(s) || seen[s] {
			return
		}
		seen[s] = true
		fragments = append(fragments, s)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	// Visible text only needs a word character; attribute values must hold
	// a letter.
	for _, n := range body.Nodes {
		walkText(n, func(s string) { add(s, wordCharRe) })
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		add(desc, letterRe)
	}
	for _, attr := range textAttributes {
		doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
			v, _ := sel.Attr(attr)
			add(v, letterRe)
		})
	}

	return &sitesearch.ExtractResult{
		Title: title,
		Body:  strings.Join(fragments, " "),
	}, nil
}

// walkText visits text nodes in document order, skipping hidden elements.
func walkText(n *html.Node, visit func(string)) {
	switch n.Type {
	case html.TextNode:
		visit(n.Data)
		return
	case html.ElementNode:
		if hiddenElements[n.Data] {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, visit)
	}
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
