package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ridgely/clefdrill/internal/config"
	"github.com/ridgely/clefdrill/internal/db"
	"github.com/ridgely/clefdrill/internal/ledger"
	"github.com/ridgely/clefdrill/internal/notation"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show missed notes and recent practice sessions",
	RunE:  runStats,
}

// openData opens the store and ledger for the non-interactive commands.
func openData() (*db.Store, *ledger.Ledger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, _, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return store, ledger.Open(store, logger), nil
}

func runStats(cmd *cobra.Command, args []string) error {
	store, led, err := openData()
	if err != nil {
		return err
	}
	defer store.Close()

	// SpanTwo's window covers both full catalogs, so this is every entry.
	entries := led.Available(notation.SpanTwo)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Record.Count != entries[j].Record.Count {
			return entries[i].Record.Count > entries[j].Record.Count
		}
		return ledger.Key(entries[i].Clef, entries[i].Note) < ledger.Key(entries[j].Clef, entries[j].Note)
	})

	if len(entries) == 0 {
		fmt.Println("No missed notes outstanding.")
	} else {
		fmt.Println("Missed notes:")
		for _, e := range entries {
			last := time.UnixMilli(e.Record.LastMissedAt).Format("2006-01-02 15:04")
			fmt.Printf("  %-12s misses %-3d last %s\n", ledger.Key(e.Clef, e.Note), e.Record.Count, last)
		}
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("\nNo practice sessions recorded.")
		return nil
	}

	fmt.Println("\nRecent sessions:")
	for _, s := range sessions {
		fmt.Printf("  %s  %3d answered  %3d correct  %3d%%\n",
			s.StartedAt.Format("2006-01-02 15:04"), s.Total, s.Correct, s.Accuracy())
	}
	return nil
}
