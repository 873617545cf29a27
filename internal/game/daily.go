package game

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date form used for result records.
const DateLayout = "2006-01-02"

// Epoch is day zero of the daily rotation. All day arithmetic happens in UTC
// so every client and server agrees on which word belongs to which date.
var Epoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// CalendarDay truncates t to midnight of its UTC calendar day.
func CalendarDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysSinceEpoch counts whole UTC calendar days from Epoch to date. Dates
// before the epoch give negative values. Both ends are UTC midnights, so the
// difference in Unix seconds is an exact multiple of a day; time.Duration
// would saturate about 292 years out.
func DaysSinceEpoch(date time.Time) int {
	return int((CalendarDay(date).Unix() - Epoch.Unix()) / secondsPerDay)
}

// FormatDate renders the UTC calendar day of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return CalendarDay(t).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// dailyIndex maps a day offset onto a list of n words, wrapping negative
// offsets so the index is always in [0, n).
func dailyIndex(days, n int) int {
	return ((days % n) + n) % n
}

// DailyWord returns the target word for lang on the UTC calendar day of date.
// The same (lang, date) always yields the same word, and the rotation repeats
// every len(list) days.
func (b *WordBank) DailyWord(lang Language, date time.Time) (string, error) {
	words, err := b.Words(lang)
	if err != nil {
		return "", err
	}
	return words[dailyIndex(DaysSinceEpoch(date), len(words))], nil
}
