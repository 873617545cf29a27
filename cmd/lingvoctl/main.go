// Command lingvoctl administers a lingvo deployment: it applies database
// migrations and inspects daily words and player statistics.
package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lingvo/internal/game"
	"lingvo/internal/store"
)

var (
	logger   *zap.Logger
	verbose  bool
	dbFile   string
	wordsDir string
	timeout  time.Duration

	wordLang string
	wordDate string

	statsEmail string
)

var rootCmd = &cobra.Command{
	Use:   "lingvoctl",
	Short: "Administer a lingvo server",
	Long: `lingvoctl works directly on the files a lingvo server uses.

Settings default to the same environment variables as the server
(DATABASE_FILE, WORDS_DIR), read from .env when present.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

var dailyWordCmd = &cobra.Command{
	Use:   "daily-word",
	Short: "Print the word of the day",
	Long: `Print the word served for a language on a UTC calendar day.

The date defaults to today.`,
	RunE: runDailyWord,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a player's statistics per language",
	RunE:  runStats,
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", envOr("DATABASE_FILE", "data/lingvo.sqlite"), "SQLite database file")
	rootCmd.PersistentFlags().StringVar(&wordsDir, "words", envOr("WORDS_DIR", "data/words"), "Directory holding languages.yaml and the word lists")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	dailyWordCmd.Flags().StringVar(&wordLang, "lang", "en", "Language code")
	dailyWordCmd.Flags().StringVar(&wordDate, "date", "", "Day as YYYY-MM-DD (default: today, UTC)")

	statsCmd.Flags().StringVar(&statsEmail, "email", "", "Player email (required)")
	_ = statsCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(migrateCmd, dailyWordCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openStore(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(ctx, dbFile, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()
	fmt.Fprintf(cmd.OutOrStdout(), "database %s is up to date\n", dbFile)
	return nil
}

func runDailyWord(cmd *cobra.Command, args []string) error {
	bank, err := game.LoadWordBank(wordsDir, logger)
	if err != nil {
		return err
	}
	date := time.Now()
	if wordDate != "" {
		if date, err = game.ParseDate(wordDate); err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}
	word, err := bank.DailyWord(game.Language(wordLang), date)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", game.FormatDate(date), wordLang, word)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	bank, err := game.LoadWordBank(wordsDir, logger)
	if err != nil {
		return err
	}
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	user, err := st.UserByEmail(ctx, statsEmail)
	if err != nil {
		return fmt.Errorf("look up %s: %w", statsEmail, err)
	}
	records, err := st.ResultsForUser(ctx, user.ID)
	if err != nil {
		return err
	}
	printStats(cmd.OutOrStdout(), bank.Languages(), game.ComputeStats(records, bank.Languages()))
	return nil
}

func printStats(w io.Writer, languages []game.Language, stats map[game.Language]game.StreakStats) {
	fmt.Fprintf(w, "%-6s %6s %6s %8s %8s  %s\n", "LANG", "PLAYED", "WON", "STREAK", "MAX", "DISTRIBUTION")
	for _, lang := range languages {
		s := stats[lang]
		var dist strings.Builder
		for _, a := range slices.Sorted(maps.Keys(s.Distribution)) {
			fmt.Fprintf(&dist, "%d:%d ", a, s.Distribution[a])
		}
		fmt.Fprintf(w, "%-6s %6d %6d %8d %8d  %s\n", lang, s.Total, s.Wins, s.CurrentStreak, s.MaxStreak, strings.TrimSpace(dist.String()))
	}
}
