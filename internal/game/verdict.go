package game

import "fmt"

// Verdict classifies one letter of a guess. The zero value is Unknown, which
// only appears in keyboard state; EvaluateGuess never produces it.
//
// Values are ordered by strength so that a larger Verdict always outranks a
// smaller one: Correct > Present > Absent > Unknown.
type Verdict uint8

const (
	Unknown Verdict = iota
	Absent
	Present
	Correct
)

var verdictNames = [...]string{
	Unknown: "unknown",
	Absent:  "absent",
	Present: "present",
	Correct: "correct",
}

func (v Verdict) String() string {
	if int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return fmt.Sprintf("Verdict(%d)", v)
}

// Outranks reports whether v is strictly stronger than other.
func (v Verdict) Outranks(other Verdict) bool {
	return v > other
}

func (v Verdict) MarshalText() ([]byte, error) {
	if int(v) >= len(verdictNames) {
		return nil, fmt.Errorf("invalid verdict %d", v)
	}
	return []byte(verdictNames[v]), nil
}

func (v *Verdict) UnmarshalText(text []byte) error {
	for i, name := range verdictNames {
		if name == string(text) {
			*v = Verdict(i)
			return nil
		}
	}
	return fmt.Errorf("invalid verdict %q", text)
}
