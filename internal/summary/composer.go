// Package summary renders topic phrases into tone-specific captions, tips and titles.
package summary

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"WahalaIndex/internal/domain"
)

// FallbackTopics stands in when no topic survived extraction.
const FallbackTopics = "key issues"

// Composer renders phrasebook entries. The random source only affects caption
// order, title choice and meme choice.
type Composer struct {
	book Phrasebook
	rng  *rand.Rand
}

// NewComposer wires a phrasebook with a random source; nil rng seeds one from the runtime.
func NewComposer(book Phrasebook, rng *rand.Rand) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Composer{book: book, rng: rng}
}

// JoinTopics renders "A", "A and B" or "A, B and C".
func JoinTopics(topics []string) string {
	clean := make([]string, 0, len(topics))
	for _, t := range topics {
		if t != "" {
			clean = append(clean, t)
		}
	}

	switch len(clean) {
	case 0:
		return FallbackTopics
	case 1:
		return clean[0]
	case 2:
		return clean[0] + " and " + clean[1]
	default:
		return fmt.Sprintf("%s, %s and %s", clean[0], clean[1], clean[2])
	}
}

// Captions renders every template of tone, drops identical renderings and
// shuffles the result.
func (c *Composer) Captions(topics []string, tone domain.Tone) []string {
	joined := JoinTopics(topics)

	templates, ok := c.book.Captions[tone]
	if !ok {
		templates = c.book.Captions[domain.ToneClassic]
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(templates))
	for _, tpl := range templates {
		v := strings.ReplaceAll(tpl, TopicsSlot, joined)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	c.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Tip returns the closing line for tone and score, or "" for an unknown score.
func (c *Composer) Tip(tone domain.Tone, score int) string {
	tips, ok := c.book.Tips[tone]
	if !ok {
		tips = c.book.Tips[domain.ToneClassic]
	}
	return tips[score]
}

// Title picks one of the headline titles for tone and score.
func (c *Composer) Title(tone domain.Tone, score int) string {
	titles, ok := c.book.Titles[tone]
	if !ok {
		titles = c.book.Titles[domain.ToneClassic]
	}
	options := titles[score]
	if len(options) == 0 {
		return fmt.Sprintf("%d — Wahala Level", score)
	}
	return options[c.rng.IntN(len(options))]
}

// Meme picks a meme URL for score, or "" when none is configured.
func (c *Composer) Meme(score int) string {
	urls := c.book.Memes[score]
	if len(urls) == 0 {
		return ""
	}
	return urls[c.rng.IntN(len(urls))]
}
