package headline

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Key folds case and punctuation so near-identical headlines compare equal.
func Key(h string) string {
	return strings.TrimSpace(nonWord.ReplaceAllString(strings.ToLower(h), " "))
}

// Dedup drops every headline whose key was already seen. First occurrence wins
// and the input order is preserved.
func Dedup(headlines []string) []string {
	seen := make(map[string]struct{}, len(headlines))
	out := make([]string, 0, len(headlines))
	for _, h := range headlines {
		k := Key(h)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, h)
	}
	return out
}

// Clean normalizes raw candidates from one source, drops rejects and
// duplicates, and keeps at most limit headlines (limit <= 0 keeps all).
func (n *Normalizer) Clean(candidates []string, limit int) []string {
	accepted := make([]string, 0, len(candidates))
	for _, raw := range candidates {
		if h, ok := n.Normalize(raw); ok {
			accepted = append(accepted, h)
		}
	}
	out := Dedup(accepted)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
