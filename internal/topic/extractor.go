// Package topic derives short representative phrases from a headline batch by
// frequency counting, preferring two-word phrases over single words.
package topic

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"WahalaIndex/internal/lexicon"
)

const (
	// MaxTopics is the most phrases Extract ever returns.
	MaxTopics = 3
	// DefaultCandidates is the N of the 2×N shortlist.
	DefaultCandidates = 12

	bigramBoost   = 1.3
	maxMultiWords = 2
	minTopicLen   = 4
	maxPhraseLen  = 6
	maxTokenLen   = 18
)

// Lexicon is the immutable word configuration of the extractor.
type Lexicon struct {
	Stopwords      map[string]struct{}
	Junk           map[string]struct{}
	Compass        map[string]struct{}
	BrandBlocklist []string
	Acronyms       map[string]string
	SmallWords     map[string]struct{}
}

// DefaultLexicon returns the production tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Stopwords:      lexicon.Stopwords(),
		Junk:           lexicon.JunkTopics(),
		Compass:        lexicon.Compass(),
		BrandBlocklist: lexicon.BrandBlocklist(),
		Acronyms:       lexicon.Acronyms(),
		SmallWords:     lexicon.SmallWords(),
	}
}

var tokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z\-]+`)

// Extractor turns headlines into at most MaxTopics title-cased phrases.
type Extractor struct {
	lex        Lexicon
	candidates int
}

// NewExtractor builds an extractor; candidates <= 0 selects DefaultCandidates.
func NewExtractor(lex Lexicon, candidates int) *Extractor {
	if candidates <= 0 {
		candidates = DefaultCandidates
	}
	return &Extractor{lex: lex, candidates: candidates}
}

// Extract returns the most representative phrases first. Duplicated headlines
// are fine: they simply weigh more.
func (e *Extractor) Extract(headlines []string) []string {
	shortlist := e.shortlist(headlines)
	cleaned := e.clean(shortlist)
	return pick(cleaned)
}

type term struct {
	text  string
	count int
	order int
}

// shortlist counts unigrams and bigrams and returns the top 2×N by count.
// Ties keep first-seen order.
func (e *Extractor) shortlist(headlines []string) []string {
	index := map[string]int{}
	var terms []term
	add := func(t string) {
		if i, ok := index[t]; ok {
			terms[i].count++
			return
		}
		index[t] = len(terms)
		terms = append(terms, term{text: t, count: 1, order: len(terms)})
	}

	for _, h := range headlines {
		toks := tokens(h)
		for _, w := range toks {
			if !e.stopword(w) && len(w) >= minTopicLen {
				add(w)
			}
		}
		for i := 0; i+1 < len(toks); i++ {
			if !e.stopword(toks[i]) && !e.stopword(toks[i+1]) {
				add(toks[i] + " " + toks[i+1])
			}
		}
	}

	for i := range terms {
		if strings.Contains(terms[i].text, " ") {
			terms[i].count = int(math.Floor(float64(terms[i].count) * bigramBoost))
		}
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].count > terms[j].count
	})

	limit := min(2*e.candidates, len(terms))
	out := make([]string, 0, limit)
	for _, t := range terms[:limit] {
		out = append(out, t.text)
	}
	return out
}

func tokens(text string) []string {
	raw := tokenPattern.FindAllString(text, -1)
	for i, w := range raw {
		raw[i] = strings.ToLower(w)
	}
	return raw
}

func (e *Extractor) stopword(w string) bool {
	_, ok := e.lex.Stopwords[w]
	return ok
}

// clean filters, tidies and de-duplicates shortlisted terms.
func (e *Extractor) clean(raw []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range raw {
		if e.bad(t) || len(strings.ReplaceAll(t, " ", "")) < minTopicLen {
			continue
		}
		tidy := e.tidy(t)
		if utf8.RuneCountInString(tidy) < minTopicLen {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(tidy))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tidy)
	}
	return out
}

func (e *Extractor) bad(t string) bool {
	tl := strings.ToLower(t)
	if _, ok := e.lex.Junk[tl]; ok {
		return true
	}
	if _, ok := e.lex.Stopwords[tl]; ok {
		return true
	}
	if _, ok := e.lex.Compass[tl]; ok {
		return true
	}
	for _, b := range e.lex.BrandBlocklist {
		if strings.Contains(tl, b) {
			return true
		}
	}
	if len(tl) < minTopicLen {
		return true
	}
	parts := strings.Fields(tl)
	if len(parts) > maxPhraseLen {
		return true
	}
	for _, p := range parts {
		if len(p) > maxTokenLen {
			return true
		}
	}
	return false
}

// pick prefers up to two multi-word phrases, then fills with single words.
func pick(topics []string) []string {
	var multis, singles []string
	for _, t := range topics {
		if strings.Contains(t, " ") {
			multis = append(multis, t)
		} else {
			singles = append(singles, t)
		}
	}

	nm := min(maxMultiWords, len(multis))
	final := append([]string{}, multis[:nm]...)
	final = append(final, singles[:min(MaxTopics-nm, len(singles))]...)

	if len(final) < 2 {
		all := append(append([]string{}, multis...), singles...)
		final = all[:min(2, len(all))]
	}
	if len(final) > MaxTopics {
		final = final[:MaxTopics]
	}
	return final
}
