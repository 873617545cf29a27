package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
	TokenIssuer       = "lingvo"
)

// Route constants
const (
	RouteRegister  = "/api/register"
	RouteLogin     = "/api/login"
	RouteDayWord   = "/api/day-word/:lang"
	RouteValidate  = "/api/validate/:lang/:guess"
	RouteResult    = "/api/result"
	RouteStats     = "/api/stats"
	RouteGame      = "/api/game/:lang"
	RouteGameGuess = "/api/game/:lang/guess"
	RouteGameReset = "/api/game/:lang/reset"
	RouteHealthz   = "/healthz"
)

// Error message constants
const (
	ErrorCredentialsRequired = "Email & password required"
	ErrorEmailTaken          = "Email already exists"
	ErrorInvalidLogin        = "Invalid login"
	ErrorMissingLoginFields  = "Missing email or password"
	ErrorMissingAuthHeader   = "Missing Authorization header"
	ErrorInvalidToken        = "Invalid or expired token"
	ErrorUnknownLanguage     = "Unknown language"
	ErrorMissingFields       = "Missing fields"
	ErrorInvalidResult       = "Result is not a valid win (1-6 attempts) or loss (7 attempts)"
	ErrorDB                  = "DB error"
	ErrorServer              = "Server error"
	ErrorGameOver            = "Game is over."
	ErrorInvalidLength       = "Word must be 5 letters."
	ErrorNotInWordList       = "Not in word list"
	ErrorDuplicateGuess      = "You already guessed that word."
	ErrorTooManyRequests     = "Too many requests. Please slow down."
)

// Context key constants
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	identityKey             = "identity"
)
