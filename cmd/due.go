package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/leddie24/neetcode-tracker/internal/algorithm"
	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show problems due for review today",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer a.Close()

		state := a.progress.State()
		problems := algorithm.DueProblems(a.catalog.Problems(), state, a.today)

		if len(problems) == 0 {
			fmt.Println("✅ No problems due today! Good job.")
			return
		}

		fmt.Printf("🔥 %d Problems due today:\n\n", len(problems))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tProblem\tDiff\tNext\tDue\tReviews")
		fmt.Fprintln(w, "--\t-------\t----\t----\t---\t-------")

		for _, p := range problems {
			rec := state[p.ID]
			next, _ := algorithm.NextDue(rec, a.today)
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, p.Difficulty, next.Label(), next.Due, reviewMarkers(rec, a.today))
		}
		w.Flush()
		fmt.Println("\n" + markerLegend)
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
}
