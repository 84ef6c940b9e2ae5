package cmd

import (
	"fmt"
	"os"

	"github.com/leddie24/neetcode-tracker/internal/transfer"
	"github.com/spf13/cobra"
)

var forceImport bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace progress with an exported file",
	Long: `Import a file written by 'codetrack export' or a bare progress map.
The current progress is replaced, not merged: anything recorded since the
file was exported is lost. Notes in the file overwrite notes here.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println("❌ Error importing file:", err)
			return
		}

		payload, err := transfer.Parse(data)
		if err != nil {
			fmt.Println("❌ Error importing file. Please check the file format.")
			fmt.Println("  ", err)
			return
		}

		a, err := openApp()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer a.Close()

		if current := a.progress.State(); len(current) > 0 && !forceImport {
			prompt := fmt.Sprintf("Replace %d existing records with %d from %s?", len(current), len(payload.Progress), args[0])
			if !confirm(prompt) {
				fmt.Println("❌ Cancelled.")
				return
			}
		}

		applied := transfer.Apply(payload, a.progress, a.catalog)
		if applied > 0 {
			a.saveNotes()
		}
		a.log.Info("imported progress", "format", payload.Format, "records", len(payload.Progress), "notes", applied)

		fmt.Printf("✅ Progress imported successfully! (%s format, %d records, %d notes)\n",
			payload.Format, len(payload.Progress), applied)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&forceImport, "force", "f", false, "Skip confirmation")
}
