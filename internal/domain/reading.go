package domain

import "time"

// DayLayout is the ISO-8601 date layout used for every persisted day key.
const DayLayout = "2006-01-02"

// DayKey formats t as a calendar day.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// DailyScore is one row of the daily history table.
type DailyScore struct {
	Date  string
	Score int
}

// CaptionRecord is one row of the caption log.
type CaptionRecord struct {
	Date    string
	Score   int
	Caption string
}

// ReadingStatus enumerates the outcomes of a single analysis run.
type ReadingStatus string

const (
	StatusScored       ReadingStatus = "scored"
	StatusUndetermined ReadingStatus = "undetermined"
	StatusInsufficient ReadingStatus = "insufficient"
)

// Delta is the change against the most recent earlier day, if one exists.
type Delta struct {
	Value int
	Known bool
}

// Reading is everything the presentation layer needs for one run.
type Reading struct {
	RunID       string
	Day         time.Time
	Status      ReadingStatus
	Score       int
	OracleReply string
	Tone        Tone
	Title       string
	Summary     string
	Tip         string
	Meme        string
	Topics      []string
	Categories  []CategoryScore
	Delta       Delta
	Trend       []DailyScore
	Sources     []SourceHeadlines
	Headlines   int
}
