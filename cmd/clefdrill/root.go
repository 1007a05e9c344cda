package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ridgely/clefdrill/internal/app"
	"github.com/ridgely/clefdrill/internal/config"
	"github.com/ridgely/clefdrill/internal/db"
	"github.com/ridgely/clefdrill/internal/ledger"
	"github.com/ridgely/clefdrill/internal/notation"
	"github.com/ridgely/clefdrill/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "clefdrill",
	Short: "Practice reading notes on the treble and bass clefs",
	Long: `clefdrill shows a staff with one note and asks you to name it.
Wrong answers are remembered; mistake mode resurfaces them until cleared.`,
	RunE: runDrill,
}

// Execute runs the CLI.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func runDrill(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	led := ledger.Open(store, logger)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := quiz.NewGenerator(rng, led)

	span := notation.Span(cfg.DefaultSpan)
	mode := quiz.Uniform
	if cfg.DefaultMode == "weighted" && led.HasEligible(span) {
		mode = quiz.Weighted
	}

	delay := time.Duration(cfg.AdvanceDelayMS) * time.Millisecond
	model := app.New(gen, led, mode, span, delay)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if m, ok := final.(app.Model); ok {
		saveSession(store, m, logger)
	}
	return nil
}

// saveSession records the finished run in the session history. Sessions
// with no attempts are not worth keeping.
func saveSession(store *db.Store, m app.Model, logger *slog.Logger) {
	stats := m.Stats()
	if stats.Total == 0 {
		return
	}
	now := time.Now()
	sess := db.PracticeSession{
		ID:        uuid.NewString(),
		StartedAt: m.StartedAt(),
		EndedAt:   &now,
		Total:     stats.Total,
		Correct:   stats.Correct,
	}
	if err := store.SaveSession(sess); err != nil {
		logger.Warn("save session history", "error", err)
	}
}
