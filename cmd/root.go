package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var todayFlag string

var rootCmd = &cobra.Command{
	Use:   "codetrack",
	Short: "Track NeetCode progress with spaced repetition",
	Long: `codetrack tracks which NeetCode problems you have solved and schedules
five reviews for each one: 1, 3, 7, 14 and 30 days after the solve date.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&todayFlag, "today", "", "Pretend today is this date (YYYY-MM-DD)")
}
