package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lingvo/internal/game"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || !isValidSessionID(sessionID) {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(SessionCookieName, sessionID, int(app.Config.CookieMaxAge.Seconds()), "/", "", app.Config.Production, true)
		app.logFor(c.Request.Context()).Info("created session", zap.String("session_id", sessionID))
	}
	return sessionID
}

// isValidSessionID accepts only canonical UUID strings, which keeps session
// IDs safe to use as file names.
func isValidSessionID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// playerSession returns the session's state from memory, then disk, and
// creates an empty one when neither has it. Callers hold SessionMutex.
func (app *App) playerSession(ctx context.Context, sessionID string) *PlayerSession {
	if ps, ok := app.PlayerSessions[sessionID]; ok {
		ps.LastAccessTime = app.Now()
		return ps
	}

	ps, err := app.loadSessionFromFile(sessionID)
	switch {
	case err == nil:
		app.logFor(ctx).Debug("restored session from disk", zap.String("session_id", sessionID))
	case errors.Is(err, os.ErrNotExist):
		ps = &PlayerSession{Games: make(map[game.Language]game.Session)}
	default:
		app.logFor(ctx).Warn("discarding unreadable session file", zap.String("session_id", sessionID), zap.Error(err))
		ps = &PlayerSession{Games: make(map[game.Language]game.Session)}
	}
	ps.LastAccessTime = app.Now()
	app.PlayerSessions[sessionID] = ps
	return ps
}

// currentGame returns today's game for lang, starting a new one when the
// stored game belongs to an earlier day. Callers hold SessionMutex.
func (app *App) currentGame(ps *PlayerSession, lang game.Language) (game.Session, error) {
	today := game.FormatDate(app.Now())
	if s, ok := ps.Games[lang]; ok && s.Date == today {
		return s, nil
	}
	s, err := game.NewSession(app.Words, lang, app.Now())
	if err != nil {
		return game.Session{}, err
	}
	ps.Games[lang] = s
	return s, nil
}

// persistSession writes the session to disk. Callers hold SessionMutex so
// saves for one session reach the disk in the order they were made. Failures
// are logged; the in-memory copy stays authoritative.
func (app *App) persistSession(ctx context.Context, sessionID string, ps *PlayerSession) {
	if err := app.saveSessionToFile(sessionID, ps); err != nil {
		app.logFor(ctx).Warn("failed to persist session", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// cleanupExpiredSessions drops in-memory sessions idle for longer than the
// session timeout and returns how many were removed.
func (app *App) cleanupExpiredSessions() int {
	cutoff := app.Now().Add(-app.Config.SessionTimeout)
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	removed := 0
	for id, ps := range app.PlayerSessions {
		if ps.LastAccessTime.Before(cutoff) {
			delete(app.PlayerSessions, id)
			removed++
		}
	}
	return removed
}

// runSessionCleanup expires memory and disk sessions every interval until
// ctx is cancelled.
func (app *App) runSessionCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := app.cleanupExpiredSessions()
			if err := app.cleanupOldSessionFiles(app.Config.SessionTimeout); err != nil {
				logWarn("Session file cleanup failed: %v", err)
			}
			if removed > 0 {
				logInfo("Expired %d in-memory sessions", removed)
			}
		}
	}
}

func (app *App) logFor(ctx context.Context) *zap.Logger {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok && reqID != "" {
		return app.Log.With(zap.String("request_id", reqID))
	}
	return app.Log
}
