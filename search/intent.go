package search

import (
	"strings"

	"github.com/mosaic-community/sitesearch"
)

// intentGroups collapses raw intent keys onto a canonical group so that a
// query about one earns partial credit on records about another. Keys not
// listed are their own group.
var intentGroups = map[string]string{
	"home_care":          "aged_care",
	"elder_care":         "aged_care",
	"aged_care_support":  "aged_care",
	"settlement_support": "settlement",
	"migration":          "settlement",
	"visa":               "settlement",
	"refugee_support":    "settlement",
	"employment_support": "employment",
	"jobs":               "employment",
	"training":           "employment",
	"youth":              "youth_family",
	"family":             "youth_family",
	"family_support":     "youth_family",
	"volunteer":          "volunteering",
	"get_involved":       "volunteering",
	"forms":              "resources",
	"documents":          "resources",
	"contact_us":         "contact",
	"locations":          "contact",
}

func intentGroup(intent string) string {
	if g, ok := intentGroups[intent]; ok {
		return g
	}
	return intent
}

func sameGroup(a, b string) bool {
	return intentGroup(a) == intentGroup(b)
}

// queryIntents returns the intent keys owning any of terms in synonyms,
// in sorted key order.
func queryIntents(terms []string, synonyms sitesearch.Synonyms) []string {
	if len(synonyms) == 0 {
		return nil
	}
	inTerms := make(map[string]bool, len(terms))
	for _, t := range terms {
		inTerms[t] = true
	}
	var intents []string
	for _, intent := range sortedKeys(synonyms) {
		for _, phrase := range synonyms[intent] {
			if inTerms[strings.ToLower(strings.TrimSpace(phrase))] {
				intents = append(intents, intent)
				break
			}
		}
	}
	return intents
}
