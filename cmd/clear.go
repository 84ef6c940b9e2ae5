package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forceClear bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all progress",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer a.Close()

		if !forceClear {
			if !confirm("Are you sure you want to clear all progress?") {
				fmt.Println("❌ Cancelled.")
				return
			}
		}

		a.progress.ClearAll()
		fmt.Println("🗑️  All progress cleared.")
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&forceClear, "force", "f", false, "Skip confirmation")
}
