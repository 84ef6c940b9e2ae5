package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/leddie24/neetcode-tracker/internal/models"
	"github.com/leddie24/neetcode-tracker/internal/report"
	"github.com/leddie24/neetcode-tracker/internal/transfer"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress and notes to a JSON file (or an xlsx report)",
	Run: func(cmd *cobra.Command, args []string) {
		format := strings.ToLower(exportFormat)
		if format != "json" && format != "xlsx" {
			fmt.Println("❌ Format must be json or xlsx")
			return
		}

		a, err := openApp()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer a.Close()

		out := exportOutput
		if out == "" {
			out = transfer.FileName(a.today)
			if format == "xlsx" {
				out = strings.TrimSuffix(out, ".json") + ".xlsx"
			}
		}

		if format == "xlsx" {
			if err := report.WriteXLSX(out, a.catalog.Problems(), a.progress.State(), a.today); err != nil {
				fmt.Println("❌ Error exporting:", err)
				return
			}
			fmt.Println("✅ Report written to", out)
			return
		}

		snap := transfer.Export(a.progress.State(), a.catalog.Problems(), a.today)
		if err := writeSnapshot(out, snap); err != nil {
			fmt.Println("❌ Error exporting:", err)
			return
		}
		fmt.Printf("✅ Exported %d records to %s\n", len(snap.Progress), out)
	},
}

// writeSnapshot encodes snap to path. A failed close is an export failure.
func writeSnapshot(path string, snap models.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := transfer.Encode(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default neetcode-progress-<date>.json)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "json or xlsx")
}
