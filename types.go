package main

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"lingvo/internal/auth"
	"lingvo/internal/game"
	"lingvo/internal/store"
)

// App holds the server's dependencies and in-memory state.
type App struct {
	Config Config
	Words  *game.WordBank
	Store  *store.Store
	Tokens *auth.TokenManager
	Log    *zap.Logger

	PlayerSessions map[string]*PlayerSession
	SessionMutex   sync.RWMutex
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex

	StartTime time.Time
	// Now supplies the current time; tests pin it to a fixed date.
	Now func() time.Time
}

// PlayerSession is one browser session: at most one game per language.
type PlayerSession struct {
	Games          map[game.Language]game.Session `json:"games"`
	LastAccessTime time.Time                      `json:"lastAccessTime"`
}

func newApp(cfg Config, words *game.WordBank, st *store.Store, log *zap.Logger) *App {
	return &App{
		Config:         cfg,
		Words:          words,
		Store:          st,
		Tokens:         auth.NewTokenManager(cfg.JWTSecret, TokenIssuer, cfg.TokenTTL),
		Log:            log,
		PlayerSessions: make(map[string]*PlayerSession),
		LimiterMap:     make(map[string]*rate.Limiter),
		StartTime:      time.Now(),
		Now:            time.Now,
	}
}
