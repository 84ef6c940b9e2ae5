package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/leddie24/neetcode-tracker/internal/models"
	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show recent activity",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer a.Close()

		stats, err := a.db.ActivityStats(a.today)
		if err != nil {
			fmt.Println("❌ Error fetching stats:", err)
			return
		}

		fmt.Println("\n📊 Activity Overview")
		fmt.Println("====================")
		fmt.Printf("Solves Logged:      %d\n", stats.SolvesTotal)
		fmt.Printf("Reviews Logged:     %d\n", stats.ReviewsTotal)
		fmt.Printf("Reviews Last 7D:    %d\n", stats.ReviewsLast7Days)
		if !stats.BusiestDay.IsZero() {
			fmt.Printf("Busiest Day:        %s (%d)\n", stats.BusiestDay, stats.BusiestDayCount)
		}

		fmt.Println("\n📈 Events by Kind")
		writeKindTable(os.Stdout, stats.CountByKind)

		recent, err := a.db.ListEvents(10)
		if err != nil {
			a.log.Warn("failed to list events", "error", err)
			return
		}
		if len(recent) > 0 {
			fmt.Println("\n🕑 Recent")
			for _, e := range recent {
				fmt.Printf("  %s  %s\n", e.On, describeEvent(a, e))
			}
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

var eventKinds = []models.EventKind{
	models.EventSolved, models.EventUnsolved, models.EventReviewDone,
	models.EventReviewUndone, models.EventImported, models.EventCleared,
}

// writeKindTable prints one row per event kind with its count and a bar capped at 40.
func writeKindTable(out io.Writer, counts map[models.EventKind]int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Kind\tCount\tActivity")
	fmt.Fprintln(w, "----\t-----\t--------")
	for _, k := range eventKinds {
		count := counts[k]
		bar := strings.Repeat("█", min(count, 40))
		fmt.Fprintf(w, "%s\t%d\t%s\n", k, count, bar)
	}
	w.Flush()
}

func describeEvent(a *app, e models.Event) string {
	name := fmt.Sprintf("#%d", e.ProblemID)
	if p, err := a.catalog.Find(e.ProblemID); err == nil {
		name = p.Name
	}
	switch e.Kind {
	case models.EventSolved:
		return "solved " + name
	case models.EventUnsolved:
		return "unsolved " + name
	case models.EventReviewDone:
		return fmt.Sprintf("R%d done for %s", e.ReviewIndex+1, name)
	case models.EventReviewUndone:
		return fmt.Sprintf("R%d undone for %s", e.ReviewIndex+1, name)
	case models.EventImported:
		return "imported progress"
	case models.EventCleared:
		return "cleared all progress"
	}
	return string(e.Kind)
}
