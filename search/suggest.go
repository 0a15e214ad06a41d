package search

import (
	"regexp"
	"strings"

	"github.com/mosaic-community/sitesearch"
)

// SuggestionAll leads every non-empty suggestion list.
const SuggestionAll = "All"

const maxSuggestions = 5

// intentTrigger maps query wording to a suggested intent phrase.
type intentTrigger struct {
	intent   string
	pattern  *regexp.Regexp
	fallback string
}

var intentTriggers = []intentTrigger{
	{
		intent:   "aged_care",
		pattern:  regexp.MustCompile(`aged|elder|senior|older|nursing|retire|mayores|ancian|cao tuổi|مسن|बुजुर्ग`),
		fallback: "Aged care services",
	},
	{
		intent:   "employment",
		pattern:  regexp.MustCompile(`job|work|employ|career|resume|empleo|trabajo|việc làm|وظيف|नौकरी`),
		fallback: "Employment support",
	},
	{
		intent:   "settlement",
		pattern:  regexp.MustCompile(`visa|settle|migra|refugee|asylum|new arrival|visado|refugiad|định cư|لاجئ|शरणार्थी`),
		fallback: "Settlement services",
	},
	{
		intent:   "youth_family",
		pattern:  regexp.MustCompile(`youth|child|kid|teen|famil|parent|jóvenes|niños|gia đình|عائل|परिवार`),
		fallback: "Youth and family programs",
	},
	{
		intent:   "forms",
		pattern:  regexp.MustCompile(`form|document|download|application|formulario|mẫu đơn|استمار|फॉर्म`),
		fallback: "Forms and documents",
	},
}

// Suggestions returns up to five query refinements for query, led by
// SuggestionAll. Intent phrases come first, localized from the
// translations artifact when possible, followed by titles and tags within
// typo distance of the query.
func (c *Client) Suggestions(query string) []string {
	q := sitesearch.NormalizeQuery(query)
	if q == "" {
		return []string{}
	}
	lang := sitesearch.DetectLanguage(query)
	st := c.state()

	var found []string
	for _, tr := range intentTriggers {
		if !tr.pattern.MatchString(q) {
			continue
		}
		phrase := st.translations.Phrase(tr.intent, lang)
		if phrase == "" {
			phrase = tr.fallback
		}
		found = appendUnique(found, phrase)
	}

	vocab := vocabulary(inLanguage(st.items, lang), true)
	for _, tok := range nearMisses(q, sitesearch.NormalizeDialect(q), vocab, maxSuggestions) {
		if len(found) >= maxSuggestions {
			break
		}
		found = appendUnique(found, tok)
	}

	out := []string{SuggestionAll}
	for _, s := range found {
		if len(out) == maxSuggestions {
			break
		}
		if strings.EqualFold(s, SuggestionAll) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return list
		}
	}
	return append(list, s)
}
