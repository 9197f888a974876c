// Package category scores a headline batch against a keyword taxonomy.
package category

import (
	"math"
	"strings"

	"WahalaIndex/internal/domain"
)

// MaxHeat is the heat assigned to the most-matched category.
const MaxHeat = 5

// DefaultTaxonomy returns the five built-in categories.
func DefaultTaxonomy() []domain.Category {
	return []domain.Category{
		{Name: "Politics", Keywords: []string{"senate", "president", "governor", "minister", "election", "assembly", "bill", "policy", "pdp", "apc", "inec"}},
		{Name: "Economy", Keywords: []string{"inflation", "naira", "forex", "subsidy", "customs", "tax", "unemployment", "budget", "cbn"}},
		{Name: "Power & Fuel", Keywords: []string{"fuel", "petrol", "diesel", "pump price", "nepa", "electricity", "power", "grid", "outage"}},
		{Name: "Security", Keywords: []string{"bandit", "kidnap", "attack", "security", "police", "insurgent", "boko haram", "theft", "derail", "train"}},
		{Name: "Social Buzz", Keywords: []string{"twitter", "x.com", "controversy", "trend", "backlash", "viral", "protest", "strike", "nlc", "asuu", "tuc"}},
	}
}

// Classifier counts keyword hits per category. It works for any taxonomy size.
type Classifier struct {
	taxonomy []domain.Category
}

// NewClassifier copies taxonomy, lowercasing keywords.
func NewClassifier(taxonomy []domain.Category) *Classifier {
	own := make([]domain.Category, 0, len(taxonomy))
	for _, cat := range taxonomy {
		kws := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				kws = append(kws, kw)
			}
		}
		own = append(own, domain.Category{Name: cat.Name, Keywords: kws})
	}
	return &Classifier{taxonomy: own}
}

// Score returns one entry per category in taxonomy order. A headline counts
// once per category, but may count toward several categories.
func (c *Classifier) Score(headlines []string) []domain.CategoryScore {
	lower := make([]string, len(headlines))
	for i, h := range headlines {
		lower[i] = strings.ToLower(h)
	}

	scores := make([]domain.CategoryScore, len(c.taxonomy))
	maxHits := 0
	for i, cat := range c.taxonomy {
		hits := 0
		for _, h := range lower {
			if matchesAny(h, cat.Keywords) {
				hits++
			}
		}
		scores[i] = domain.CategoryScore{Name: cat.Name, Hits: hits}
		if hits > maxHits {
			maxHits = hits
		}
	}

	for i := range scores {
		scores[i].Heat = Heat(scores[i].Hits, maxHits)
	}
	return scores
}

// Heat scales hits against maxHits onto 1..MaxHeat, rounding half to even.
func Heat(hits, maxHits int) int {
	if maxHits <= 0 {
		return 1
	}
	heat := int(math.RoundToEven(MaxHeat * float64(hits) / float64(maxHits)))
	return max(1, heat)
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
