package domain

// Tone selects the voice of titles, captions and tips.
type Tone string

const (
	ToneClassic Tone = "Classic"
	ToneGenZ    Tone = "Gen-Z"
	TonePidgin  Tone = "Pidgin"
)

// Tones lists the recognized tones; the first one is the fallback.
var Tones = []Tone{ToneClassic, ToneGenZ, TonePidgin}

// ParseTone maps a user supplied value to a known tone, falling back to Classic.
func ParseTone(value string) Tone {
	for _, t := range Tones {
		if string(t) == value {
			return t
		}
	}
	return ToneClassic
}
