package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	A = Absent
	P = Present
	C = Correct
)

func TestEvaluateGuess(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		target string
		want   []Verdict
	}{
		{"all correct", "apple", "apple", []Verdict{C, C, C, C, C}},
		{"mixed", "alley", "apple", []Verdict{C, P, A, P, A}},
		{"all absent", "zzzzz", "apple", []Verdict{A, A, A, A, A}},
		{"repeated letter matched once exactly", "eeeee", "apple", []Verdict{A, A, A, A, C}},
		{"exact match takes priority over presence", "lolly", "hello", []Verdict{A, P, C, C, A}},
		{"duplicates in target credited twice", "babes", "abbey", []Verdict{P, P, C, C, A}},
		{"present only as often as remaining", "ppxpp", "apple", []Verdict{P, C, A, A, A}},
		{"accented letters are distinct", "arbol", "árbol", []Verdict{A, C, C, C, C}},
		{"multibyte letters", "señal", "señor", []Verdict{C, C, C, A, A}},
		{"anagram", "leapp", "apple", []Verdict{P, P, P, P, P}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateGuess(tt.guess, tt.target)
			if err != nil {
				t.Fatalf("EvaluateGuess(%q, %q) error: %v", tt.guess, tt.target, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("EvaluateGuess(%q, %q) mismatch (-want +got):\n%s", tt.guess, tt.target, diff)
			}
		})
	}
}

func TestEvaluateGuessLengthMismatch(t *testing.T) {
	for _, pair := range [][2]string{{"abc", "apple"}, {"apples", "apple"}, {"", "apple"}, {"árbo", "apple"}} {
		if _, err := EvaluateGuess(pair[0], pair[1]); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("EvaluateGuess(%q, %q) error = %v, want ErrLengthMismatch", pair[0], pair[1], err)
		}
	}
	// Five runes on both sides even though the byte lengths differ.
	if _, err := EvaluateGuess("árbol", "apple"); err != nil {
		t.Errorf("EvaluateGuess with multibyte guess: unexpected error %v", err)
	}
}

func TestEvaluateGuessProperties(t *testing.T) {
	words := []string{"apple", "alley", "hello", "lolly", "abbey", "babes", "eerie", "geese", "llama", "sassy", "tests", "árbol", "señor"}
	for _, target := range words {
		for _, guess := range words {
			got, err := EvaluateGuess(guess, target)
			if err != nil {
				t.Fatalf("EvaluateGuess(%q, %q): %v", guess, target, err)
			}
			again, _ := EvaluateGuess(guess, target)
			if !cmp.Equal(got, again) {
				t.Errorf("EvaluateGuess(%q, %q) not deterministic: %v then %v", guess, target, got, again)
			}

			g, tr := []rune(guess), []rune(target)
			credited := map[rune]int{}
			inTarget := map[rune]int{}
			for i := range tr {
				inTarget[tr[i]]++
				if g[i] == tr[i] && got[i] != Correct {
					t.Errorf("EvaluateGuess(%q, %q): position %d is an exact match but got %v", guess, target, i, got[i])
				}
				if got[i] == Correct || got[i] == Present {
					credited[g[i]]++
				}
			}
			for letter, n := range credited {
				if n > inTarget[letter] {
					t.Errorf("EvaluateGuess(%q, %q): letter %q credited %d times, target has %d", guess, target, letter, n, inTarget[letter])
				}
			}
		}
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"APPLE", "apple"},
		{"  Table ", "table"},
		{"A\u0301RBOL", "\u00e1rbol"}, // decomposed accent composes
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeWord(tt.input); got != tt.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
