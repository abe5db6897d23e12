// ABOUTME: CLI commands for exporting and importing drink data.
// ABOUTME: Supports JSON, YAML, and Markdown export; import merges a JSON backup by id.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export drink data",
	Long: `Export drink data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML grouped by day (human-readable)
  markdown   Per-day tables with standard-drink totals

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include days from this date (markdown only, YYYY-MM-DD)

EXAMPLES:

  drinks export json -o backup.json
  drinks export yaml
  drinks export markdown --since 2024-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		loc := trk.Location()

		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = store.ExportJSON(ctx)
		case "yaml":
			data, err = store.ExportYAML(ctx, loc)
		case "markdown", "md":
			var since *time.Time
			if exportSince != "" {
				t, perr := time.ParseInLocation("2006-01-02", exportSince, loc)
				if perr != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			var md string
			md, err = store.ExportMarkdown(ctx, since, loc)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import drink data from JSON",
	Long: `Import drink data from a JSON backup produced by 'drinks export json'.

Drinks are merged by id: records already present are replaced, new ones are
added. The weekly limit is taken from the backup when it carries one.

EXAMPLES:

  drinks import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		summary, err := store.ImportJSON(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if summary.ProfileUpdated {
			if err := trk.Load(cmd.Context()); err != nil {
				return err
			}
		}

		color.Green("✓ Imported from %s", filename)
		fmt.Printf("  %d added, %d replaced", summary.Added, summary.Replaced)
		if summary.ProfileUpdated {
			fmt.Printf(", weekly limit set to %g", trk.WeeklyLimit())
		}
		fmt.Println()
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include days since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
