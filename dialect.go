package sitesearch

import (
	"regexp"
	"strings"
)

// spellingVariants maps British/Australian spellings to the American form.
var spellingVariants = map[string]string{
	"centre":        "center",
	"centres":       "centers",
	"programme":     "program",
	"programmes":    "programs",
	"counselling":   "counseling",
	"counsellor":    "counselor",
	"counsellors":   "counselors",
	"enrol":         "enroll",
	"enrolment":     "enrollment",
	"licence":       "license",
	"travelling":    "traveling",
	"cheque":        "check",
	"aeroplane":     "airplane",
	"paediatric":    "pediatric",
	"behaviour":     "behavior",
	"colour":        "color",
	"favourite":     "favorite",
	"honour":        "honor",
	"labour":        "labor",
	"neighbour":     "neighbor",
	"neighbours":    "neighbors",
	"neighbourhood": "neighborhood",
}

// Words ending in -ise that are spelled the same in both dialects.
var iseInvariant = map[string]bool{
	"advise": true, "compromise": true, "enterprise": true, "exercise": true,
	"expertise": true, "franchise": true, "merchandise": true,
	"otherwise": true, "premise": true, "promise": true, "raise": true,
	"revise": true, "rise": true, "supervise": true, "surprise": true,
	"televise": true, "wise": true, "advertise": true, "improvise": true,
	"precise": true, "concise": true, "noise": true, "praise": true,
	"cruise": true, "paradise": true, "devise": true, "demise": true,
	"despise": true,
}

var (
	wordRe      = regexp.MustCompile(`\pL+`)
	iseSuffixRe = regexp.MustCompile(`(is)(e|es|ed|ing|ation|ations)$`)
)

// NormalizeDialect rewrites British spellings in s to the American
// variant, word by word. Words without a known variant are unchanged.
func NormalizeDialect(s string) string {
	return wordRe.ReplaceAllStringFunc(s, normalizeWord)
}

func normalizeWord(w string) string {
	lower := strings.ToLower(w)
	if v, ok := spellingVariants[lower]; ok {
		return v
	}
	if stem, ok := iseStem(lower); ok && !iseInvariant[stem+"ise"] {
		return iseSuffixRe.ReplaceAllString(lower, "iz$2")
	}
	return w
}

// iseStem returns the word minus its -is* suffix when the word is long
// enough that the suffix is not the whole root.
func iseStem(w string) (string, bool) {
	loc := iseSuffixRe.FindStringIndex(w)
	if loc == nil || loc[0] < 3 {
		return "", false
	}
	return w[:loc[0]], true
}
