package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forceUnsolve bool

var unsolveCmd = &cobra.Command{
	Use:   "unsolve [id]",
	Short: "Mark a problem unsolved (clears its review history)",
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

		rec, ok := a.progress.Record(p.ID)
		if !ok || !rec.Solved {
			fmt.Printf("ℹ️  '%s' is not solved.\n", p.Name)
			return
		}

		if !forceUnsolve {
			prompt := fmt.Sprintf("Mark '%s' as unsolved? This will clear all review progress.", p.Name)
			if !confirm(prompt) {
				fmt.Println("❌ Cancelled.")
				return
			}
		}

		a.progress.MarkUnsolved(p.ID)
		fmt.Printf("🔄 '%s' marked unsolved. Review history cleared.\n", p.Name)
	},
}

func init() {
	rootCmd.AddCommand(unsolveCmd)
	unsolveCmd.Flags().BoolVarP(&forceUnsolve, "force", "f", false, "Skip confirmation")
}
