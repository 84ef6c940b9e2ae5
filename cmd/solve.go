package cmd

import (
	"fmt"

	"github.com/leddie24/neetcode-tracker/internal/algorithm"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [id]",
	Short: "Mark a problem solved and start its review schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer a.Close()

		p, err := a.problemArg(args[0])
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		if rec, ok := a.progress.Record(p.ID); ok && rec.Solved {
			fmt.Printf("ℹ️  '%s' is already solved (since %s)\n", p.Name, rec.SolvedDate)
			return
		}

		rec := a.progress.MarkSolved(p.ID)
		fmt.Printf("✅ Solved '%s' on %s\n", p.Name, rec.SolvedDate)
		for i, due := range algorithm.NextReviewDates(rec.SolvedDate) {
			fmt.Printf("   R%d due %s\n", i+1, due)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
