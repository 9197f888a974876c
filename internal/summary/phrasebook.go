package summary

import "WahalaIndex/internal/domain"

// TopicsSlot is replaced by the joined topic phrase in every caption template.
const TopicsSlot = "{topics}"

// Phrasebook holds every fixed sentence the composer can render. Treat it as
// read-only after construction.
type Phrasebook struct {
	Captions map[domain.Tone][]string
	Tips     map[domain.Tone]map[int]string
	Titles   map[domain.Tone]map[int][]string
	Memes    map[int][]string
}

// DefaultPhrasebook returns the built-in tone tables with no memes.
func DefaultPhrasebook() Phrasebook {
	return Phrasebook{
		Captions: map[domain.Tone][]string{
			domain.ToneClassic: {
				"Top stories: {topics} lead today.",
				"{topics} dominate the headlines.",
				"Today’s cycle is driven by {topics}.",
			},
			domain.ToneGenZ: {
				"Top stories: {topics} — TL is hot. 🔥",
				"Heads up: {topics}; low-key tense. 💫",
				"{topics} running the TL today. ⚡",
			},
			domain.TonePidgin: {
				"Main gist: {topics} dey lead today.",
				"Na {topics} dey top gist.",
				"Today matter na {topics}.",
			},
		},
		Tips: map[domain.Tone]map[int]string{
			domain.ToneClassic: {
				1: "Light day — handle errands.",
				2: "Small bumps; add buffer time.",
				3: "Keep powerbank handy; move with sense.",
				4: "Batch errands; hold cash and data.",
				5: "Survival mode; postpone stress.",
			},
			domain.ToneGenZ: {
				1: "Chill day — soft cruise. ✨",
				2: "Minor bumps; keep it pushing. 💫",
				3: "Eyes open, powerbank on deck. ⚡",
				4: "High tension — plan your waka. 🔥",
				5: "Hard day — conserve energy, fr. 💀",
			},
			domain.TonePidgin: {
				1: "Day soft — no wahala.",
				2: "Small bumps — add small buffer, abeg.",
				3: "Shine eye, powerbank ready.",
				4: "High tension — batch waka; hold cash/data.",
				5: "Survival things — conserve energy.",
			},
		},
		Titles: map[domain.Tone]map[int][]string{
			domain.ToneClassic: {
				1: {"😌 1 — Peace Mode Activated", "😌 1 — Cruise Control"},
				2: {"🙂 2 — Small Small Wahala", "🙂 2 — Minor Turbulence"},
				3: {"😬 3 — Vibes Are Shaky", "😬 3 — Middle of the Storm"},
				4: {"😫 4 — High Alert Vibes", "😫 4 — Wahala Rising"},
				5: {"🔥 5 — Wahala With Full Chest", "🔥 5 — Maximum Chaos"},
			},
			domain.ToneGenZ: {
				1: {"😌 1 — Soft Life Loading", "😌 1 — Chillaxation"},
				2: {"🙂 2 — Tiny Wahala", "🙂 2 — Light Waka"},
				3: {"😬 3 — Vibes are ‘Ehn Ehn’", "😬 3 — Mid Wahala"},
				4: {"😫 4 — Wahala Dey Ramp Up", "😫 4 — No Loose Guard"},
				5: {"🔥 5 — Full Blown Gbege", "🔥 5 — Chaos Supreme"},
			},
			domain.TonePidgin: {
				1: {"😌 1 — Everywhere Steady", "😌 1 — Soft Day"},
				2: {"🙂 2 — Small Wahala", "🙂 2 — E Still Manage"},
				3: {"😬 3 — E Dey Balance So-So", "😬 3 — Watch & Move"},
				4: {"😫 4 — E Don Dey Hot", "😫 4 — High Tension"},
				5: {"🔥 5 — Wahala Full Ground", "🔥 5 — No Try Am"},
			},
		},
	}
}
