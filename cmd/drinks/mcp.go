// ABOUTME: CLI commands for the MCP server and the interactive dashboard.
// ABOUTME: mcp serves over stdio until a shutdown signal; dash runs the Bubble Tea UI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/drinks/internal/mcp"
	"github.com/harperreed/drinks/internal/tui"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "drinks": {
        "command": "drinks",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_drink          Log a drink (type defaults fill volume and ABV)
  list_drinks        A day's drinks with day and week totals
  update_drink       Change volume, ABV, or time of a drink
  delete_drink       Delete a drink by id or prefix
  get_stats          30-day streaks and one week's breakdown
  get_calendar       Month heat map classifications
  set_weekly_limit   Change the weekly limit
  list_drink_types   Drink types with defaults and bounds

AVAILABLE RESOURCES:

  drinks://today     Today's drinks and totals
  drinks://week      This week's progress and streaks
  drinks://profile   Weekly limit setting`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(trk, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"dashboard", "ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open a full-screen dashboard with today's progress, the week's bar chart,
30-day statistics, and a month heat map.

KEYS:

  ←/h →/l   previous / next week
  [ ]       previous / next month
  r         refresh
  q         quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(trk)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(dashCmd)
}
