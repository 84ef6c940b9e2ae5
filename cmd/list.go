package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/leddie24/neetcode-tracker/internal/algorithm"
	"github.com/leddie24/neetcode-tracker/internal/models"
	"github.com/spf13/cobra"
)

var (
	listCategory   string
	listDifficulty string
	listDueOnly    bool
	listSolvedOnly bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog problems with their review status",
	Run: func(cmd *cobra.Command, args []string) {
		var difficulty models.Difficulty
		if listDifficulty != "" && listDifficulty != "All" {
			d, err := models.ParseDifficulty(listDifficulty)
			if err != nil {
				fmt.Println("❌", err)
				return
			}
			difficulty = d
		}

		a, err := openApp()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer a.Close()

		state := a.progress.State()
		problems := a.catalog.Filter(listCategory, difficulty)
		if listDueOnly {
			problems = algorithm.DueProblems(problems, state, a.today)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tProblem\tCategory\tDiff\tStatus\tReviews")
		fmt.Fprintln(w, "--\t-------\t--------\t----\t------\t-------")

		shown := 0
		for _, p := range problems {
			rec := state[p.ID]
			if listSolvedOnly && !rec.Solved {
				continue
			}
			shown++
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, p.Category, p.Difficulty, solvedLabel(rec), reviewMarkers(rec, a.today))
		}
		w.Flush()

		if shown == 0 {
			fmt.Println("\nNo problems match these filters.")
			if listCategory != "" && len(a.catalog.Filter(listCategory, "")) == 0 {
				fmt.Println("Categories:", strings.Join(a.catalog.Categories(), ", "))
			}
			return
		}
		fmt.Printf("\n%d problems. %s\n", shown, markerLegend)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only this category (e.g. \"Two Pointers\")")
	listCmd.Flags().StringVarP(&listDifficulty, "difficulty", "d", "", "Only this difficulty (Easy, Medium, Hard)")
	listCmd.Flags().BoolVar(&listDueOnly, "due", false, "Only problems due for review")
	listCmd.Flags().BoolVar(&listSolvedOnly, "solved", false, "Only solved problems")
}
