package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSessionWin(t *testing.T) {
	bank := testBank(t)
	// epoch+1 selects "apple" from the test list.
	s, err := NewSession(bank, "en", Epoch.AddDate(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if s.Target != "apple" || s.Date != "2023-01-02" || s.Status != StatusPlaying {
		t.Fatalf("unexpected new session: %+v", s)
	}

	s1, verdicts, err := s.Submit(bank, "ALLEY")
	if err != nil {
		t.Fatalf("Submit(alley): %v", err)
	}
	if diff := cmp.Diff([]Verdict{C, P, A, P, A}, verdicts); diff != "" {
		t.Errorf("alley verdicts (-want +got):\n%s", diff)
	}
	if s.Attempts() != 0 || len(s.Keyboard) != 0 {
		t.Error("Submit modified the original session")
	}

	s2, _, err := s1.Submit(bank, "apple")
	if err != nil {
		t.Fatalf("Submit(apple): %v", err)
	}
	if s2.Status != StatusWon || !s2.Over() || s2.Attempts() != 2 {
		t.Errorf("after winning guess: status=%s attempts=%d", s2.Status, s2.Attempts())
	}
	if s2.Keyboard.Get('l') != Correct || s2.Keyboard.Get('y') != Absent {
		t.Errorf("keyboard = %v", s2.Keyboard)
	}

	if _, _, err := s2.Submit(bank, "table"); !errors.Is(err, ErrGameOver) {
		t.Errorf("Submit after win: error = %v, want ErrGameOver", err)
	}

	rec, ok := s2.Result("u1")
	if !ok {
		t.Fatal("Result not available for a finished game")
	}
	want := ResultRecord{UserID: "u1", Date: "2023-01-02", Language: "en", Attempts: 2, Won: true}
	if rec != want {
		t.Errorf("Result = %+v, want %+v", rec, want)
	}
}

func TestSessionLoss(t *testing.T) {
	bank := testBank(t)
	s, err := NewSession(bank, "en", Epoch)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Result("u1"); ok {
		t.Error("Result available for a game in progress")
	}
	for i, guess := range []string{"apple", "slate", "brick", "ghost", "alley", "hello"} {
		s, _, err = s.Submit(bank, guess)
		if err != nil {
			t.Fatalf("guess %d (%s): %v", i, guess, err)
		}
	}
	if s.Status != StatusLost {
		t.Fatalf("status = %s after %d misses, want lost", s.Status, MaxGuesses)
	}
	rec, _ := s.Result("u1")
	if rec.Won || rec.Attempts != LossAttempts {
		t.Errorf("Result = %+v, want a loss with %d attempts", rec, LossAttempts)
	}
}

func TestSessionRejectsInvalidGuesses(t *testing.T) {
	bank := testBank(t)
	s, err := NewSession(bank, "en", Epoch)
	if err != nil {
		t.Fatal(err)
	}
	s, _, err = s.Submit(bank, "apple")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		guess string
		want  error
	}{
		{"app", ErrLengthMismatch},
		{"apples", ErrLengthMismatch},
		{"qwert", ErrNotInWordList},
		{"apple", ErrDuplicateGuess},
		{" APPLE ", ErrDuplicateGuess},
	}
	for _, tt := range tests {
		next, _, err := s.Submit(bank, tt.guess)
		if !errors.Is(err, tt.want) {
			t.Errorf("Submit(%q) error = %v, want %v", tt.guess, err, tt.want)
		}
		if next.Attempts() != s.Attempts() {
			t.Errorf("Submit(%q) recorded a row despite error", tt.guess)
		}
	}
}

func TestNewSessionUnsupportedLanguage(t *testing.T) {
	if _, err := NewSession(testBank(t), "xx", Epoch); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
}
