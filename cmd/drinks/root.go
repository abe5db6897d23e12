// ABOUTME: Root Cobra command for drinks CLI.
// ABOUTME: Loads config and opens storage and the tracker via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harperreed/drinks/internal/config"
	"github.com/harperreed/drinks/internal/mcp"
	"github.com/harperreed/drinks/internal/storage"
	"github.com/harperreed/drinks/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *log.Logger
	store  *storage.Store
	trk    *tracker.Tracker

	flagBackend string
	flagDataDir string
)

// annotationStorage set to "none" on a command (or a parent) skips opening
// storage in PersistentPreRunE.
const annotationStorage = "storage"

var noStorage = map[string]bool{
	"help":             true,
	"completion":       true,
	"__complete":       true,
	"__completeNoDesc": true,
}

func needsStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if noStorage[c.Name()] || c.Annotations[annotationStorage] == "none" {
			return false
		}
	}
	return true
}

var rootCmd = &cobra.Command{
	Use:   "drinks",
	Short: "Personal alcohol intake tracker",
	Long: `Drinks is a CLI tool for logging drinks and tracking them against a weekly
limit measured in US standard drinks (14 g of pure alcohol).

DRINK TYPES:

  beer      12 oz @ 5%      wine      5 oz @ 12%
  cocktail  1.5 oz @ 40%    shot      1.5 oz @ 40%
  custom    12 oz @ 5%

QUICK START:

  $ drinks add beer                        # Log a beer right now
  $ drinks add wine --volume 8 --at 19:30  # Larger pour, earlier tonight
  $ drinks today                           # Today's drinks and weekly progress
  $ drinks stats                           # Streaks and this week's totals
  $ drinks limit 10                        # Change the weekly limit
  $ drinks dash                            # Interactive dashboard

STORAGE:

  Data lives in ~/.local/share/drinks using the badger backend by default.
  Pick another with --backend (badger, sqlite, charm, memory) or set
  "backend" in ~/.config/drinks/config.json.

MCP INTEGRATION:

  Run 'drinks mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		logger = cfg.NewLogger()

		if !needsStorage(cmd) {
			return nil
		}
		return openTracker(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func openTracker(ctx context.Context) error {
	loc, err := cfg.GetLocation()
	if err != nil {
		return err
	}
	weekStart, err := cfg.GetWeekStart()
	if err != nil {
		return err
	}

	store, err = cfg.OpenStorage(logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	trk = tracker.New(store,
		tracker.WithLocation(loc),
		tracker.WithWeekStart(weekStart),
		tracker.WithLogger(logger),
	)
	if ctx == nil {
		ctx = context.Background()
	}
	if err := trk.Load(ctx); err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version",
	Annotations: map[string]string{annotationStorage: "none"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("drinks %s\n", mcp.Version)
	},
}

// Execute runs the root command.
func Execute() error {
	return execute(context.Background())
}

// execute runs the root command and closes storage afterwards. Cobra skips
// PersistentPostRunE when RunE fails, so the close has to happen here too.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	return err
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend (badger, sqlite, charm, memory)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/drinks)")
	rootCmd.AddCommand(versionCmd)
}
