package cmd

import (
	"fmt"

	"github.com/leddie24/neetcode-tracker/internal/algorithm"
	"github.com/leddie24/neetcode-tracker/internal/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show solved and due counts",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer a.Close()

		problems := a.catalog.Problems()
		state := a.progress.State()

		solved := 0
		byDifficulty := map[models.Difficulty]int{}
		for _, p := range problems {
			if state[p.ID].Solved {
				solved++
				byDifficulty[p.Difficulty]++
			}
		}

		fmt.Println("📊 Statistics")
		fmt.Println("-------------")
		fmt.Printf("Total Problems: %d\n", len(problems))
		fmt.Printf("Solved:         %d\n", solved)
		fmt.Printf("Easy:           %d\n", byDifficulty[models.Easy])
		fmt.Printf("Medium:         %d\n", byDifficulty[models.Medium])
		fmt.Printf("Hard:           %d\n", byDifficulty[models.Hard])
		fmt.Printf("Due for Review: %d\n", algorithm.DueCount(problems, state, a.today))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
