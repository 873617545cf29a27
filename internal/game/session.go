package game

import (
	"fmt"
	"slices"
	"time"
	"unicode/utf8"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Lexicon answers word list membership. *WordBank implements it.
type Lexicon interface {
	Contains(lang Language, word string) bool
}

// Row is one submitted guess and its verdicts.
type Row struct {
	Guess    string    `json:"guess"`
	Verdicts []Verdict `json:"verdicts"`
}

// Session is the full state of one game for one language and day. It is a
// value: Submit returns an updated copy and never modifies its receiver, so
// callers own every version they hold.
type Session struct {
	Language Language      `json:"language"`
	Date     string        `json:"date"`
	Target   string        `json:"target"`
	Rows     []Row         `json:"rows"`
	Keyboard KeyColorState `json:"keyboard"`
	Status   Status        `json:"status"`
}

// NewSession starts a game on the daily word for lang and the UTC day of date.
func NewSession(bank *WordBank, lang Language, date time.Time) (Session, error) {
	target, err := bank.DailyWord(lang, date)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Language: lang,
		Date:     FormatDate(date),
		Target:   target,
		Rows:     []Row{},
		Keyboard: KeyColorState{},
		Status:   StatusPlaying,
	}, nil
}

// Over reports whether the game has been won or lost.
func (s Session) Over() bool {
	return s.Status == StatusWon || s.Status == StatusLost
}

// Attempts is the number of guesses submitted so far.
func (s Session) Attempts() int {
	return len(s.Rows)
}

// Guessed reports whether guess was already submitted in this game.
func (s Session) Guessed(guess string) bool {
	return slices.ContainsFunc(s.Rows, func(r Row) bool { return r.Guess == guess })
}

// Submit evaluates guess against the target and returns the next session
// along with the verdicts of the new row. The guess is normalised before use
// and must be a word of the session's language.
func (s Session) Submit(words Lexicon, guess string) (Session, []Verdict, error) {
	if s.Over() {
		return s, nil, ErrGameOver
	}
	guess = NormalizeWord(guess)
	if n := utf8.RuneCountInString(guess); n != WordLength {
		return s, nil, fmt.Errorf("%w: want %d letters, got %d", ErrLengthMismatch, WordLength, n)
	}
	if !words.Contains(s.Language, guess) {
		return s, nil, fmt.Errorf("%w: %q", ErrNotInWordList, guess)
	}
	if s.Guessed(guess) {
		return s, nil, fmt.Errorf("%w: %q", ErrDuplicateGuess, guess)
	}

	verdicts, err := EvaluateGuess(guess, s.Target)
	if err != nil {
		return s, nil, err
	}
	keyboard, err := UpdateKeyboardState(s.Keyboard, guess, verdicts)
	if err != nil {
		return s, nil, err
	}

	next := s
	next.Rows = append(slices.Clone(s.Rows), Row{Guess: guess, Verdicts: verdicts})
	next.Keyboard = keyboard
	switch {
	case guess == s.Target:
		next.Status = StatusWon
	case len(next.Rows) >= MaxGuesses:
		next.Status = StatusLost
	}
	return next, verdicts, nil
}

// Result converts a finished game into the record stored for userID. The
// second value is false while the game is still in progress.
func (s Session) Result(userID string) (ResultRecord, bool) {
	if !s.Over() {
		return ResultRecord{}, false
	}
	attempts := len(s.Rows)
	if s.Status == StatusLost {
		attempts = LossAttempts
	}
	return ResultRecord{
		UserID:   userID,
		Date:     s.Date,
		Language: s.Language,
		Attempts: attempts,
		Won:      s.Status == StatusWon,
	}, true
}
