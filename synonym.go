package sitesearch

import (
	"regexp"
	"strings"
)

// SynonymRule pairs a trigger phrase with the phrases related to it.
type SynonymRule struct {
	Trigger string
	Related []string
}

// SynonymRules is an ordered table of synonym rules.
type SynonymRules []SynonymRule

// Tags returns the trigger and related phrases of every rule whose trigger
// occurs in text, ignoring case.
func (rs SynonymRules) Tags(text string) []string {
	text = strings.ToLower(text)
	var tags []string
	for _, r := range rs {
		if strings.Contains(text, r.Trigger) {
			tags = append(tags, r.Trigger)
			tags = append(tags, r.Related...)
		}
	}
	return tags
}

// Expand applies the rules to a normalized query in both directions: a
// trigger found in the query contributes the trigger and all its related
// phrases, and a related phrase found in the query contributes its trigger.
func (rs SynonymRules) Expand(query string) []string {
	if query == "" {
		return nil
	}
	var terms []string
	for _, r := range rs {
		if strings.Contains(query, r.Trigger) {
			terms = append(terms, r.Trigger)
			terms = append(terms, r.Related...)
			continue
		}
		for _, rel := range r.Related {
			if strings.Contains(query, rel) {
				terms = append(terms, r.Trigger)
				break
			}
		}
	}
	return terms
}

var nonWordRe = regexp.MustCompile(`[^\pL\pN_]+`)

// Tokenize splits s on non-word characters and lower-cases the pieces.
// Empty tokens are dropped.
func Tokenize(s string) []string {
	var tokens []string
	for _, tok := range nonWordRe.Split(strings.ToLower(s), -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// TagRules expand page text into search tags at index time.
var TagRules = SynonymRules{
	{Trigger: "volunteer", Related: []string{"get involved", "help", "participate"}},
	{Trigger: "employment", Related: []string{"jobs", "job", "career", "careers", "work", "employment support"}},
	{Trigger: "jobs", Related: []string{"employment", "career", "work"}},
	{Trigger: "aged care", Related: []string{"elder care", "senior", "seniors", "elderly", "home care"}},
	{Trigger: "settlement", Related: []string{"migrants", "refugees", "new arrivals", "visa"}},
	{Trigger: "family", Related: []string{"families", "parenting", "children"}},
	{Trigger: "youth", Related: []string{"young people", "teens", "students"}},
	{Trigger: "donate", Related: []string{"donation", "give", "support us"}},
	{Trigger: "contact", Related: []string{"phone", "email", "get in touch"}},
	{Trigger: "location", Related: []string{"office", "offices", "near me", "address"}},
	{Trigger: "resources", Related: []string{"downloads", "guides", "forms"}},
	{Trigger: "community", Related: []string{"events", "programs", "engagement"}},
}

// QueryRules expand user queries at search time, including colloquial
// phrasings of the same canonical terms.
var QueryRules = SynonymRules{
	{Trigger: "aged care", Related: []string{
		"elder care", "elderly", "senior", "seniors", "older people", "old people",
		"home care", "grandparents", "nursing home", "retirement", "care for my mum",
		"care for my dad", "looking after parents",
	}},
	{Trigger: "employment", Related: []string{
		"job", "jobs", "work", "career", "careers", "resume", "job search",
		"find work", "looking for work", "unemployed", "get a job",
	}},
	{Trigger: "settlement", Related: []string{
		"migrant", "migrants", "refugee", "refugees", "visa", "new arrival",
		"new arrivals", "immigration", "newly arrived", "asylum", "just arrived",
		"new to australia",
	}},
	{Trigger: "volunteering", Related: []string{
		"volunteer", "volunteers", "get involved", "help out", "give back", "participate",
	}},
	{Trigger: "youth", Related: []string{
		"young people", "teen", "teens", "teenager", "kids", "children", "students",
	}},
	{Trigger: "resources", Related: []string{
		"forms", "documents", "downloads", "guides", "brochures", "fact sheets",
	}},
	{Trigger: "contact", Related: []string{
		"phone", "email", "call us", "get in touch", "reach us", "talk to someone",
	}},
}
