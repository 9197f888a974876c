// Package lexicon holds the static word tables shared by the headline cleaner,
// the topic extractor and the category classifier. Every accessor returns a
// fresh copy so callers can never mutate another component's configuration.
package lexicon

import "strings"

// SitePrefixes are outlet names that scrapers glue in front of headlines.
func SitePrefixes() []string {
	return []string{"naija news", "nigeria news", "premium times", "thecable", "daily trust", "vanguard", "punch"}
}

// PromoMarkers flag sponsored or advertorial content.
func PromoMarkers() []string {
	return []string{"sponsored", "advert", "advertorial", "promo", "brand studio", "press release"}
}

// BrandBlocklist holds crypto and brand terms that never count as news.
func BrandBlocklist() []string {
	return []string{
		"blockdag", "pi network", "worldcoin", "shiba", "dogecoin", "pepe",
		"safemoon", "airdrop", "presale", "token sale",
	}
}

// Stopwords is the tiny English plus local-filler list used by topic extraction.
func Stopwords() map[string]struct{} {
	return set(`
a an and the is are was were be been being of to in for on at by with from up down over under into out
as about after before during around across between against through while due per via
i you he she it we they them us our your their my his her its this that these those
will would can could shall should may might must not no yes do does did doing done
than then there here where who whom whose which what why how
new govt government nigeria nigerian lagos abuja kano state federal local today news
`)
}

// JunkTopics are reporting verbs and page furniture that make poor topics.
func JunkTopics() map[string]struct{} {
	return set(`
says said say saying tells told urges reacts vows meets seeks slams backs hails warns admits alleges claims
video photos picture watch live update updates headline headlines report reports story stories breaking latest
south north east west centre central statewide state-wide nationwide
`)
}

// Compass lists the bare directions rejected as topics.
func Compass() map[string]struct{} {
	return set("south north east west")
}

// Acronyms maps lowercase abbreviations to their canonical spelling.
func Acronyms() map[string]string {
	return map[string]string{
		"cbn": "CBN", "efcc": "EFCC", "nnpc": "NNPC", "fg": "FG", "nlng": "NLNG", "imf": "IMF", "opec": "OPEC",
		"pdp": "PDP", "apc": "APC", "inec": "INEC", "nlc": "NLC", "tuc": "TUC", "asuu": "ASUU",
	}
}

// SmallWords stay lowercase when title-casing.
func SmallWords() map[string]struct{} {
	return set("and or the of in on at to for by with")
}

func set(words string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		out[w] = struct{}{}
	}
	return out
}
