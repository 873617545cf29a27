package game

import (
	"fmt"
	"maps"
)

// KeyColorState records the strongest verdict seen for each letter during one
// game. Letters never seen are Unknown.
type KeyColorState map[string]Verdict

// Get returns the state of letter, Unknown when it has not been guessed.
func (s KeyColorState) Get(letter rune) Verdict {
	return s[string(letter)]
}

// UpdateKeyboardState folds one evaluated guess into state and returns the
// result as a new map. A letter only moves to a stronger verdict, so a later
// Absent for a letter already known to be Present or Correct is ignored.
func UpdateKeyboardState(state KeyColorState, guess string, verdicts []Verdict) (KeyColorState, error) {
	letters := []rune(guess)
	if len(letters) != len(verdicts) {
		return nil, fmt.Errorf("%w: %d letters, %d verdicts", ErrLengthMismatch, len(letters), len(verdicts))
	}

	next := make(KeyColorState, len(state)+len(letters))
	maps.Copy(next, state)
	for i, letter := range letters {
		if verdicts[i].Outranks(next.Get(letter)) {
			next[string(letter)] = verdicts[i]
		}
	}
	return next, nil
}
