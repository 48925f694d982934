package poloniex

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Minute = time.Minute
	Hour   = time.Hour
	Day    = 24 * Hour
	Week   = 7 * Day
	Month  = 30 * Day
	Year   = 365 * Day
)

// DateLayout is the layout used by the exchange for dates.
const DateLayout = "2006-01-02 15:04:05"

// EpochToUTC formats a unix timestamp as a UTC date. An empty layout means
// DateLayout.
func EpochToUTC(ts int64, layout string) string {
	return time.Unix(ts, 0).UTC().Format(orDefault(layout))
}

// UTCToEpoch parses a UTC date into a unix timestamp.
func UTCToEpoch(date, layout string) (int64, error) {
	t, err := time.ParseInLocation(orDefault(layout), date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("poloniex: couldn't parse date %s: %w", date, err)
	}
	return t.Unix(), nil
}

// EpochToLocal formats a unix timestamp as a local date.
func EpochToLocal(ts int64, layout string) string {
	return time.Unix(ts, 0).Local().Format(orDefault(layout))
}

// LocalToEpoch parses a local date into a unix timestamp.
func LocalToEpoch(date, layout string) (int64, error) {
	t, err := time.ParseInLocation(orDefault(layout), date, time.Local)
	if err != nil {
		return 0, fmt.Errorf("poloniex: couldn't parse date %s: %w", date, err)
	}
	return t.Unix(), nil
}

// RoundPercent formats a ratio as a percentage with at most places
// decimals and at least one, 0.12345 -> "12.35%", 0.12 -> "12.0%".
func RoundPercent(d decimal.Decimal, places int32) string {
	s := d.Mul(decimal.NewFromInt(100)).Round(places).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}

func orDefault(layout string) string {
	if layout == "" {
		return DateLayout
	}
	return layout
}
