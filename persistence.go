package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

var errInvalidSessionID = errors.New("invalid session ID format")

// sessionPath returns the file holding sessionID inside the session directory.
func (app *App) sessionPath(sessionID string) (string, error) {
	if !isValidSessionID(sessionID) {
		return "", errInvalidSessionID
	}
	return filepath.Join(app.Config.SessionDir, sessionID+".json"), nil
}

// saveSessionToFile persists a player session to disk.
func (app *App) saveSessionToFile(sessionID string, ps *PlayerSession) error {
	path, err := app.sessionPath(sessionID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(app.Config.SessionDir, 0755); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}

	data, err := json.MarshalIndent(ps, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", sessionID, err)
	}
	// Write then rename so a crash never leaves a half-written file.
	tmp, err := os.CreateTemp(app.Config.SessionDir, sessionID+".*.tmp")
	if err != nil {
		return fmt.Errorf("create session temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// loadSessionFromFile loads a player session from disk. Missing, expired or
// corrupted files report os.ErrNotExist; the latter two are removed.
func (app *App) loadSessionFromFile(sessionID string) (*PlayerSession, error) {
	path, err := app.sessionPath(sessionID)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if age := app.Now().Sub(info.ModTime()); age > app.Config.SessionTimeout {
		app.Log.Debug("removing stale session file", zap.String("path", path), zap.Duration("age", age))
		_ = os.Remove(path)
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ps PlayerSession
	if err := json.Unmarshal(data, &ps); err != nil || ps.Games == nil {
		app.Log.Warn("removing corrupted session file", zap.String("path", path), zap.Error(err))
		_ = os.Remove(path)
		return nil, os.ErrNotExist
	}
	for lang, s := range ps.Games {
		if s.Language != lang || s.Target == "" {
			app.Log.Warn("removing session file with invalid game", zap.String("path", path), zap.String("language", string(lang)))
			_ = os.Remove(path)
			return nil, os.ErrNotExist
		}
	}
	return &ps, nil
}

// cleanupOldSessionFiles removes session files not modified within maxAge.
func (app *App) cleanupOldSessionFiles(maxAge time.Duration) error {
	entries, err := os.ReadDir(app.Config.SessionDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read sessions directory: %w", err)
	}

	cutoff := app.Now().Add(-maxAge)
	removed, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			failed++
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(app.Config.SessionDir, entry.Name())); err != nil {
				failed++
				continue
			}
			removed++
		}
	}
	app.Log.Info("session file cleanup completed", zap.Int("removed", removed), zap.Int("errors", failed))
	return nil
}
