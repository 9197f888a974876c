// Package severity builds the oracle prompt and reduces its reply to a 1–5 score.
package severity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"WahalaIndex/internal/ports"
)

// DefaultPromptLimit caps how many headlines go into one prompt.
const DefaultPromptLimit = 60

const (
	promptHeader = "Put on your cap, Unofficial Wahala Detector 🧢 — these headlines just dropped. " +
		"What’s the gbege level? 1 (soft) to 5 (wahala pro max) 🔥\n\n"
	promptFooter = "\nReturn only a number from 1 to 5."
)

// Assessment is the outcome of one oracle round-trip.
type Assessment struct {
	Score int
	// Known is false when the reply held no digit 1–5.
	Known bool
	Reply string
}

// Interpreter asks the oracle for a severity score.
type Interpreter struct {
	oracle ports.Oracle
	limit  int
	logger *slog.Logger
}

// NewInterpreter wires an oracle; limit <= 0 selects DefaultPromptLimit.
func NewInterpreter(oracle ports.Oracle, limit int, logger *slog.Logger) *Interpreter {
	if limit <= 0 {
		limit = DefaultPromptLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{oracle: oracle, limit: limit, logger: logger}
}

// BuildPrompt enumerates headlines and asks for a single digit.
func BuildPrompt(headlines []string) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	for i, h := range headlines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h)
	}
	b.WriteString(promptFooter)
	return b.String()
}

// ParseScore returns the first character '1'–'5' in text.
func ParseScore(text string) (int, bool) {
	for _, r := range text {
		if r >= '1' && r <= '5' {
			return int(r - '0'), true
		}
	}
	return 0, false
}

// Assess sends at most limit headlines to the oracle. A transport failure is
// folded into the reply text and parsed like any other reply.
func (i *Interpreter) Assess(ctx context.Context, headlines []string) Assessment {
	if len(headlines) > i.limit {
		headlines = headlines[:i.limit]
	}

	var reply string
	if i.oracle == nil {
		reply = "Error: oracle is not configured"
	} else {
		text, err := i.oracle.Score(ctx, BuildPrompt(headlines))
		if err != nil {
			i.logger.Warn("oracle call failed", "error", err)
			reply = "Error: " + err.Error()
		} else {
			reply = strings.TrimSpace(text)
		}
	}

	score, ok := ParseScore(reply)
	return Assessment{Score: score, Known: ok, Reply: reply}
}
