package game

import (
	"errors"
	"testing"
	"time"
)

func testBank(t *testing.T) *WordBank {
	t.Helper()
	bank, err := NewWordBank(
		[]Language{"en", "es"},
		map[Language][]string{
			"en": {"crane", "apple", "slate", "brick", "ghost", "alley", "hello", "lolly", "table", "mound"},
			"es": {"árbol", "señor", "gatos"},
		},
	)
	if err != nil {
		t.Fatalf("NewWordBank: %v", err)
	}
	return bank
}

func TestDailyWordRotation(t *testing.T) {
	bank := testBank(t)
	for _, lang := range bank.Languages() {
		words, _ := bank.Words(lang)
		for d := 0; d < 3*len(words)+1; d++ {
			date := Epoch.AddDate(0, 0, d)
			got, err := bank.DailyWord(lang, date)
			if err != nil {
				t.Fatalf("DailyWord(%s, %s): %v", lang, FormatDate(date), err)
			}
			if want := words[d%len(words)]; got != want {
				t.Errorf("DailyWord(%s, epoch+%d) = %q, want %q", lang, d, got, want)
			}
		}
	}
}

func TestDailyWordBeforeEpoch(t *testing.T) {
	bank := testBank(t)
	got, err := bank.DailyWord("es", Epoch.AddDate(0, 0, -1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "gatos" {
		t.Errorf("DailyWord(es, epoch-1) = %q, want last word", got)
	}
}

func TestDailyWordFarFromEpoch(t *testing.T) {
	bank := testBank(t)
	words, _ := bank.Words("en")
	for _, d := range []int{106000, 106752, 120000, 200000, 365 * 1000} {
		for _, sign := range []int{1, -1} {
			offset := sign * d
			date := Epoch.AddDate(0, 0, offset)
			got, err := bank.DailyWord("en", date)
			if err != nil {
				t.Fatalf("DailyWord(en, %s): %v", FormatDate(date), err)
			}
			if want := words[dailyIndex(offset, len(words))]; got != want {
				t.Errorf("DailyWord(en, epoch%+d) = %q, want %q", offset, got, want)
			}
		}
	}
}

func TestDailyWordUsesUTCCalendarDay(t *testing.T) {
	bank := testBank(t)
	eastOfUTC := time.FixedZone("UTC+10", 10*3600)
	westOfUTC := time.FixedZone("UTC-5", -5*3600)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"utc midnight", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "crane"},
		{"utc end of day", time.Date(2023, 1, 1, 23, 59, 59, 0, time.UTC), "crane"},
		{"local morning still previous utc day", time.Date(2023, 1, 2, 8, 0, 0, 0, eastOfUTC), "crane"},
		{"local evening already next utc day", time.Date(2023, 1, 1, 20, 0, 0, 0, westOfUTC), "apple"},
	}
	for _, tt := range tests {
		got, err := bank.DailyWord("en", tt.date)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: DailyWord = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDailyWordUnsupportedLanguage(t *testing.T) {
	bank := testBank(t)
	if _, err := bank.DailyWord("de", Epoch); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestDaysSinceEpoch(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2023-01-01", 0},
		{"2023-01-31", 30},
		{"2024-01-01", 365},
		{"2025-01-01", 731}, // 2024 is a leap year
		{"2022-12-31", -1},
		{"2351-07-21", 120000},
		{"2570-08-01", 200000},
		{"1475-06-03", -200000},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := DaysSinceEpoch(d); got != tt.want {
			t.Errorf("DaysSinceEpoch(%s) = %d, want %d", tt.date, got, tt.want)
		}
		if FormatDate(d) != tt.date {
			t.Errorf("FormatDate(ParseDate(%s)) = %s", tt.date, FormatDate(d))
		}
	}
	if _, err := ParseDate("01/02/2023"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
}
