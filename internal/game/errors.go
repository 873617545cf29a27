package game

import "errors"

var (
	// ErrUnsupportedLanguage is returned for a language code the word bank does not carry.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrLengthMismatch means a guess and its target (or verdicts) disagree in length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrEmptyWordList is a load-time configuration error.
	ErrEmptyWordList = errors.New("empty word list")
	// ErrDuplicateLanguage means the manifest lists a language code twice.
	ErrDuplicateLanguage = errors.New("duplicate language in manifest")

	ErrGameOver       = errors.New("game is over")
	ErrNotInWordList  = errors.New("word not recognised")
	ErrDuplicateGuess = errors.New("word already guessed")
)
