// Package headline turns raw page text into canonical headlines.
package headline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"WahalaIndex/internal/lexicon"
)

// Rules configures the normalizer. Zero values are not meaningful; start from DefaultRules.
type Rules struct {
	SitePrefixes   []string
	PromoMarkers   []string
	BrandBlocklist []string
	MinChars       int
	MinWords       int
	MaxWords       int
	// MaxCommas rejects a headline once it carries this many commas.
	MaxCommas int
	// MaxShouting rejects a headline once it carries this many all-caps tokens.
	MaxShouting int
}

// DefaultRules returns the production rule set.
func DefaultRules() Rules {
	return Rules{
		SitePrefixes:   lexicon.SitePrefixes(),
		PromoMarkers:   lexicon.PromoMarkers(),
		BrandBlocklist: lexicon.BrandBlocklist(),
		MinChars:       10,
		MinWords:       3,
		MaxWords:       20,
		MaxCommas:      3,
		MaxShouting:    3,
	}
}

var (
	camelGlue      = regexp.MustCompile(`([a-z])([A-Z])`)
	repeatedCommas = regexp.MustCompile(`\s*,\s*,+`)
)

// Normalizer cleans and filters single headlines. It holds no mutable state.
type Normalizer struct {
	rules    Rules
	prefixes []*regexp.Regexp
}

// NewNormalizer compiles the site-prefix patterns of rules.
func NewNormalizer(rules Rules) *Normalizer {
	prefixes := make([]*regexp.Regexp, 0, len(rules.SitePrefixes))
	for _, p := range rules.SitePrefixes {
		prefixes = append(prefixes, regexp.MustCompile(`(?i)^`+regexp.QuoteMeta(p)+`\s*[:–—-]\s*`))
	}
	return &Normalizer{rules: rules, prefixes: prefixes}
}

// Normalize returns the canonical form of raw and true, or "" and false when
// the text is not a usable headline. Normalizing an accepted headline again
// returns it unchanged.
func (n *Normalizer) Normalize(raw string) (string, bool) {
	h := raw
	for {
		next := n.rewrite(h)
		if next == h {
			break
		}
		h = next
	}

	if n.rejected(h) {
		return "", false
	}
	words := len(strings.Fields(h))
	if utf8.RuneCountInString(h) < n.rules.MinChars || words < n.rules.MinWords || words > n.rules.MaxWords {
		return "", false
	}
	return h, true
}

// rewrite is applied until it stops changing the text. After the first pass
// a change can only drop a prefix or commas, so the loop terminates.
func (n *Normalizer) rewrite(h string) string {
	h = camelGlue.ReplaceAllString(h, "$1 $2")
	h = collapse(h)
	h = n.stripPrefix(h)

	h = strings.ReplaceAll(h, "—", "–")
	h = strings.ReplaceAll(h, "…", " ")
	h = repeatedCommas.ReplaceAllString(h, ", ")
	return collapse(h)
}

func (n *Normalizer) stripPrefix(h string) string {
	low := strings.ToLower(h)
	for i, re := range n.prefixes {
		if loc := re.FindStringIndex(h); loc != nil {
			return h[loc[1]:]
		}
		if pref := n.rules.SitePrefixes[i]; strings.HasPrefix(low, pref+" ") {
			return h[len(pref)+1:]
		}
	}
	return h
}

func (n *Normalizer) rejected(h string) bool {
	low := strings.ToLower(h)
	if containsAny(low, n.rules.PromoMarkers) || containsAny(low, n.rules.BrandBlocklist) {
		return true
	}

	words := strings.Fields(h)
	if len(words) > n.rules.MaxWords || strings.Count(low, ",") >= n.rules.MaxCommas {
		return true
	}

	shouting := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) >= 3 && isUpper(w) {
			shouting++
		}
	}
	return shouting >= n.rules.MaxShouting
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// isUpper reports whether w has at least one letter and no lowercase letters.
func isUpper(w string) bool {
	cased := false
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
