package game

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Game configuration constants
const (
	MaxGuesses = 6 // Maximum number of guesses per game
	WordLength = 5 // Letters per word, counted in runes
)

// consumed marks a target letter already matched by an earlier position.
const consumed rune = -1

// NormalizeWord trims, lowercases and NFC-composes a word so that accented
// letters typed in decomposed form compare equal to the word list.
func NormalizeWord(input string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(input)))
}

// EvaluateGuess compares guess against target letter by letter.
//
// Exact matches are marked first and removed from the pool of target letters,
// then the remaining positions are marked Present while the pool still holds
// that letter. A repeated guess letter is therefore never credited more times
// than it occurs in the target. Both words must already be normalised.
func EvaluateGuess(guess, target string) ([]Verdict, error) {
	g := []rune(guess)
	targetCopy := []rune(target)
	if len(g) != len(targetCopy) {
		return nil, fmt.Errorf("%w: guess %q has %d letters, target has %d",
			ErrLengthMismatch, guess, len(g), len(targetCopy))
	}

	result := make([]Verdict, len(g))
	for i := range g {
		if g[i] == targetCopy[i] {
			result[i] = Correct
			targetCopy[i] = consumed
		}
	}

	for i := range g {
		if result[i] == Correct {
			continue
		}
		result[i] = Absent
		for j := range targetCopy {
			if targetCopy[j] == g[i] {
				result[i] = Present
				targetCopy[j] = consumed
				break
			}
		}
	}

	return result, nil
}
