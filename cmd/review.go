package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/leddie24/neetcode-tracker/internal/models"
	"github.com/leddie24/neetcode-tracker/internal/progress"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [id] [review 1-5]",
	Short: "Toggle one review checkpoint of a solved problem",
	Long: `Toggle a review checkpoint. Marking it done stamps today's date;
running the same command again undoes it.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 || n > models.ReviewCount {
			fmt.Printf("❌ Review must be between 1 and %d\n", models.ReviewCount)
			return
		}

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

		rec, err := a.progress.ToggleReview(p.ID, n-1)
		if errors.Is(err, progress.ErrNotSolved) {
			fmt.Printf("⚠️ '%s' is not solved yet. Run 'codetrack solve %d' first.\n", p.Name, p.ID)
			return
		}
		if err != nil {
			fmt.Println("❌ Error updating review:", err)
			return
		}

		if rec.ReviewDone(n - 1) {
			fmt.Printf("✅ R%d of '%s' done on %s\n", n, p.Name, rec.ReviewDate(n-1))
		} else {
			fmt.Printf("↩️  R%d of '%s' marked not done\n", n, p.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
