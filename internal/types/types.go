// Package types holds the JSON request and response bodies of the HTTP API.
package types

import "lingvo/internal/game"

type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type DayWordResponse struct {
	Word string `json:"word"`
	Date string `json:"date"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// ResultRequest uses pointers so that a zero attempts or false won can be
// told apart from a missing field.
type ResultRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Language string `json:"language" binding:"required"`
	Attempts *int   `json:"attempts" binding:"required,min=1,max=7"`
	Won      *bool  `json:"won" binding:"required"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type StatsResponse struct {
	Stats map[game.Language]game.StreakStats `json:"stats"`
}

type GuessRequest struct {
	Guess string `json:"guess" binding:"required"`
}

// GameView is a game as shown to the player. Target stays empty until the
// game is over.
type GameView struct {
	Language         game.Language      `json:"language"`
	Date             string             `json:"date"`
	Rows             []game.Row         `json:"rows"`
	Keyboard         game.KeyColorState `json:"keyboard"`
	Status           game.Status        `json:"status"`
	RemainingGuesses int                `json:"remainingGuesses"`
	Target           string             `json:"target,omitempty"`
	LastRow          *game.Row          `json:"lastRow,omitempty"`
	Saved            bool               `json:"saved,omitempty"`
}

// NewGameView hides the target of an unfinished game.
func NewGameView(s game.Session) GameView {
	v := GameView{
		Language:         s.Language,
		Date:             s.Date,
		Rows:             s.Rows,
		Keyboard:         s.Keyboard,
		Status:           s.Status,
		RemainingGuesses: game.MaxGuesses - s.Attempts(),
	}
	if s.Over() {
		v.Target = s.Target
	}
	return v
}

type ErrorResponse struct {
	Error string `json:"error"`
}
