package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lingvo/internal/auth"
	"lingvo/internal/game"
	"lingvo/internal/store"
	"lingvo/internal/types"
)

// registerHandler creates an account and returns it with a fresh token.
func (app *App) registerHandler(c *gin.Context) {
	var req types.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorCredentialsRequired})
		return
	}
	ctx := c.Request.Context()

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		app.logFor(ctx).Error("hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorServer})
		return
	}
	user, err := app.Store.CreateUser(ctx, req.Email, hash)
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorEmailTaken})
		return
	case err != nil:
		app.logFor(ctx).Error("create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorDB})
		return
	}

	app.logFor(ctx).Info("user registered", zap.String("user_id", user.ID))
	app.respondWithToken(c, user)
}

// loginHandler checks credentials and returns a fresh token.
func (app *App) loginHandler(c *gin.Context) {
	var req types.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorMissingLoginFields})
		return
	}
	ctx := c.Request.Context()

	user, err := app.Store.UserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: ErrorInvalidLogin})
		return
	case err != nil:
		app.logFor(ctx).Error("look up user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorDB})
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: ErrorInvalidLogin})
		return
	}
	app.respondWithToken(c, user)
}

func (app *App) respondWithToken(c *gin.Context, user store.User) {
	token, err := app.Tokens.Issue(auth.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		app.logFor(c.Request.Context()).Error("issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorServer})
		return
	}
	c.JSON(http.StatusOK, types.AuthResponse{
		User:  types.User{ID: user.ID, Email: user.Email},
		Token: token,
	})
}

// resultHandler records the caller's result for one (date, language),
// replacing any earlier result for the same pair.
func (app *App) resultHandler(c *gin.Context) {
	id, _ := identity(c)
	var req types.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorMissingFields})
		return
	}
	lang := game.Language(req.Language)
	if !app.Words.Supports(lang) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorUnknownLanguage})
		return
	}
	if !validResult(*req.Attempts, *req.Won) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorInvalidResult})
		return
	}

	record := game.ResultRecord{
		UserID:   id.UserID,
		Date:     req.Date,
		Language: lang,
		Attempts: *req.Attempts,
		Won:      *req.Won,
	}
	if err := app.Store.UpsertResult(c.Request.Context(), record); err != nil {
		app.logFor(c.Request.Context()).Error("save result", zap.String("user_id", id.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorDB})
		return
	}
	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}

// validResult accepts a win in 1 to MaxGuesses attempts or a loss recorded
// as LossAttempts.
func validResult(attempts int, won bool) bool {
	if won {
		return attempts >= 1 && attempts <= game.MaxGuesses
	}
	return attempts == game.LossAttempts
}

// statsHandler returns the caller's statistics for every configured language.
func (app *App) statsHandler(c *gin.Context) {
	id, _ := identity(c)
	records, err := app.Store.ResultsForUser(c.Request.Context(), id.UserID)
	if err != nil {
		app.logFor(c.Request.Context()).Error("load results", zap.String("user_id", id.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: ErrorDB})
		return
	}
	c.JSON(http.StatusOK, types.StatsResponse{Stats: game.ComputeStats(records, app.Words.Languages())})
}
