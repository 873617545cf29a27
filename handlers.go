package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lingvo/internal/game"
	"lingvo/internal/types"
)

// languageParam reads :lang and answers 400 when it is not configured.
func (app *App) languageParam(c *gin.Context) (game.Language, bool) {
	lang := game.Language(c.Param("lang"))
	if !app.Words.Supports(lang) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorUnknownLanguage})
		return "", false
	}
	return lang, true
}

// dayWordHandler returns today's word for a language.
func (app *App) dayWordHandler(c *gin.Context) {
	lang, ok := app.languageParam(c)
	if !ok {
		return
	}
	now := app.Now()
	word, err := app.Words.DailyWord(lang, now)
	if err != nil {
		app.logFor(c.Request.Context()).Error("daily word failed", zap.String("language", string(lang)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorServer})
		return
	}
	c.JSON(http.StatusOK, types.DayWordResponse{Word: word, Date: game.FormatDate(now)})
}

// validateHandler reports whether a guess is in a language's word list.
func (app *App) validateHandler(c *gin.Context) {
	lang, ok := app.languageParam(c)
	if !ok {
		return
	}
	guess := game.NormalizeWord(c.Param("guess"))
	c.JSON(http.StatusOK, types.ValidateResponse{Valid: app.Words.Contains(lang, guess)})
}

// gameHandler returns the session's game for today, starting one if needed.
func (app *App) gameHandler(c *gin.Context) {
	lang, ok := app.languageParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	app.SessionMutex.Lock()
	ps := app.playerSession(ctx, sessionID)
	s, err := app.currentGame(ps, lang)
	if err == nil {
		app.persistSession(ctx, sessionID, ps)
	}
	app.SessionMutex.Unlock()
	if err != nil {
		app.logFor(ctx).Error("failed to start game", zap.String("language", string(lang)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorServer})
		return
	}

	c.JSON(http.StatusOK, types.NewGameView(s))
}

// guessHandler submits a guess to the session's game. A finished game is
// recorded for the caller when a valid bearer token was sent.
func (app *App) guessHandler(c *gin.Context) {
	lang, ok := app.languageParam(c)
	if !ok {
		return
	}
	var req types.GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorMissingFields})
		return
	}
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	log := app.logFor(ctx).With(zap.String("session_id", sessionID), zap.String("language", string(lang)))

	app.SessionMutex.Lock()
	ps := app.playerSession(ctx, sessionID)
	s, err := app.currentGame(ps, lang)
	if err != nil {
		app.SessionMutex.Unlock()
		log.Error("failed to start game", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorServer})
		return
	}
	next, _, err := s.Submit(app.Words, req.Guess)
	if err != nil {
		app.SessionMutex.Unlock()
		status, msg := guessError(err)
		log.Debug("guess rejected", zap.String("guess", req.Guess), zap.Error(err))
		c.JSON(status, types.ErrorResponse{Error: msg})
		return
	}
	ps.Games[lang] = next
	app.persistSession(ctx, sessionID, ps)
	app.SessionMutex.Unlock()

	log.Info("guess accepted", zap.Int("attempt", next.Attempts()), zap.String("status", string(next.Status)))

	view := types.NewGameView(next)
	view.LastRow = &next.Rows[len(next.Rows)-1]
	if id, ok := identity(c); ok {
		if record, done := next.Result(id.UserID); done {
			if err := app.Store.UpsertResult(ctx, record); err != nil {
				log.Error("failed to record result", zap.String("user_id", id.UserID), zap.Error(err))
			} else {
				view.Saved = true
			}
		}
	}
	c.JSON(http.StatusOK, view)
}

// resetHandler discards the session's game for a language and returns a
// fresh one on the same daily word.
func (app *App) resetHandler(c *gin.Context) {
	lang, ok := app.languageParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	app.SessionMutex.Lock()
	ps := app.playerSession(ctx, sessionID)
	delete(ps.Games, lang)
	s, err := app.currentGame(ps, lang)
	if err == nil {
		app.persistSession(ctx, sessionID, ps)
	}
	app.SessionMutex.Unlock()
	if err != nil {
		app.logFor(ctx).Error("failed to start game", zap.String("language", string(lang)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorServer})
		return
	}

	app.logFor(ctx).Info("game reset", zap.String("session_id", sessionID), zap.String("language", string(lang)))
	c.JSON(http.StatusOK, types.NewGameView(s))
}

// guessError maps a rejected guess to its HTTP status and message.
func guessError(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict, ErrorGameOver
	case errors.Is(err, game.ErrLengthMismatch):
		return http.StatusBadRequest, ErrorInvalidLength
	case errors.Is(err, game.ErrNotInWordList):
		return http.StatusBadRequest, ErrorNotInWordList
	case errors.Is(err, game.ErrDuplicateGuess):
		return http.StatusBadRequest, ErrorDuplicateGuess
	default:
		return http.StatusInternalServerError, ErrorServer
	}
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	words := make(map[game.Language]int)
	for _, lang := range app.Words.Languages() {
		list, _ := app.Words.Words(lang)
		words[lang] = len(list)
	}
	status, database := http.StatusOK, "ok"
	if err := app.Store.Ping(c.Request.Context()); err != nil {
		app.logFor(c.Request.Context()).Error("database ping failed", zap.Error(err))
		status, database = http.StatusServiceUnavailable, "unavailable"
	}
	c.JSON(status, gin.H{
		"status":    map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"env":       map[bool]string{true: "production", false: "development"}[app.Config.Production],
		"database":  database,
		"languages": words,
		"uptime":    formatUptime(time.Since(app.StartTime)),
		"timestamp": app.Now().UTC().Format(time.RFC3339),
	})
}
