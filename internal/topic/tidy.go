package topic

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	leadIn        = regexp.MustCompile(`(?i)^(why|how|when|what|as|amid|after|before|during)\b[\s:,-]*`)
	reportingVerb = regexp.MustCompile(`(?i)\b(says|urges|vows|warns|backs|hails|reacts|alleges|claims)\b`)
	yearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	partyPair     = regexp.MustCompile(`(?i)\b(pdp)\s*[,/]?\s*(apc)\b`)
	commaRun      = regexp.MustCompile(`\s*,\s*,+`)
	spaceRun      = regexp.MustCompile(`\s{2,}`)
)

const edgePunct = " ,;:—–-"

// tidy strips lead-ins, reporting verbs and years, then title-cases the rest.
func (e *Extractor) tidy(t string) string {
	s := strings.TrimSpace(t)
	s = leadIn.ReplaceAllString(s, "")
	s = reportingVerb.ReplaceAllString(s, "")
	s = yearPattern.ReplaceAllString(s, "")
	s = partyPair.ReplaceAllString(s, "$1/$2")
	s = commaRun.ReplaceAllString(s, ", ")
	s = spaceRun.ReplaceAllString(s, " ")
	s = strings.Trim(s, edgePunct)
	return e.titleCase(s)
}

// titleCase capitalizes words, upper-cases known acronyms and keeps small
// connector words lowercase. Hyphenated words get an en dash.
func (e *Extractor) titleCase(s string) string {
	if strings.Contains(s, "-") && allAlphaParts(s) {
		s = strings.ReplaceAll(s, "-", "–")
	}

	var b strings.Builder
	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		b.WriteString(e.caseWord(word.String()))
		word.Reset()
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '–' || r == '-' || r == '/' {
			flush()
			b.WriteRune(r)
			continue
		}
		word.WriteRune(r)
	}
	flush()
	return b.String()
}

func (e *Extractor) caseWord(w string) string {
	low := strings.ToLower(w)
	if acr, ok := e.lex.Acronyms[low]; ok {
		return acr
	}
	if _, ok := e.lex.SmallWords[low]; ok {
		return low
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + w[size:]
}

func allAlphaParts(s string) bool {
	for _, part := range strings.Split(s, "-") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}
