package game

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// LossAttempts is the attempts value recorded for a lost game.
const LossAttempts = MaxGuesses + 1

// ResultRecord is one finished game: at most one per (user, date, language).
type ResultRecord struct {
	UserID   string   `json:"userId" db:"user_id"`
	Date     string   `json:"date" db:"date"` // YYYY-MM-DD
	Language Language `json:"language" db:"language"`
	Attempts int      `json:"attempts" db:"attempts"`
	Won      bool     `json:"won" db:"won"`
}

// StreakStats summarises one language of a user's history.
type StreakStats struct {
	Total     int `json:"total"`
	Wins      int `json:"wins"`
	MaxStreak int `json:"maxStreak"`
	// CurrentStreak is the run of wins ending at the most recent record.
	CurrentStreak int `json:"currentStreak"`
	// Distribution maps attempts to the number of wins that took that many.
	Distribution map[int]int `json:"distribution"`
}

// ComputeStats reduces one user's records to per-language statistics.
//
// A streak is a run of consecutive wins in date order. Gaps between dates do
// not break a streak; only a recorded loss does. Every language in languages
// appears in the result, zero-valued when it has no records, and records for
// other languages are ignored.
func ComputeStats(records []ResultRecord, languages []Language) map[Language]StreakStats {
	byLanguage := lo.GroupBy(records, func(r ResultRecord) Language {
		return r.Language
	})

	stats := make(map[Language]StreakStats, len(languages))
	for _, lang := range languages {
		stats[lang] = languageStats(byLanguage[lang])
	}
	return stats
}

func languageStats(records []ResultRecord) StreakStats {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b ResultRecord) int {
		return strings.Compare(a.Date, b.Date)
	})

	s := StreakStats{
		Total:        len(sorted),
		Distribution: make(map[int]int),
	}
	streak := 0
	for _, r := range sorted {
		if !r.Won {
			streak = 0
			continue
		}
		s.Wins++
		s.Distribution[r.Attempts]++
		streak++
		s.MaxStreak = max(s.MaxStreak, streak)
	}
	s.CurrentStreak = streak
	return s
}
