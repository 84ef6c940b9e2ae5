package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"text/tabwriter"

	"github.com/leddie24/neetcode-tracker/internal/algorithm"
	"github.com/spf13/cobra"
)

var showOpen bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a problem and its review schedule",
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
		rec, _ := a.progress.Record(p.ID)

		fmt.Println("========================================")
		fmt.Printf("#%d %s (%s, %s)\n", p.ID, p.Name, p.Category, p.Difficulty)
		if p.URL != "" {
			fmt.Printf("URL: %s\n", p.URL)
		}
		if p.Notes != "" {
			fmt.Printf("Notes: %s\n", p.Notes)
		}
		fmt.Printf("Status: %s\n", solvedLabel(rec))
		fmt.Println("========================================")

		if showOpen && p.URL != "" {
			fmt.Println("🌐 Opening URL in browser...")
			if err := openBrowser(p.URL); err != nil {
				fmt.Println("❌ Failed to open browser:", err)
			}
		}

		schedule := algorithm.Schedule(rec, a.today)
		if len(schedule) == 0 {
			fmt.Println("Complete the problem to see its review schedule.")
			return
		}

		pending := 0
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Review\tDue\tStatus\tCompleted")
		fmt.Fprintln(w, "------\t---\t------\t---------")
		for _, c := range schedule {
			completed := "-"
			if !c.CompletedOn.IsZero() {
				completed = c.CompletedOn.String()
				if late := c.Due.DaysUntil(c.CompletedOn); late > 0 {
					completed += fmt.Sprintf(" (%dd late)", late)
				}
			}
			if c.Status.Due() {
				pending++
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Label(), c.Due, c.Status, completed)
		}
		w.Flush()
		if pending > 0 {
			fmt.Printf("\n🔥 %d review(s) due\n", pending)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVarP(&showOpen, "open", "o", false, "Open problem URL in browser")
}

// openBrowser hands url to the platform's default handler without waiting.
func openBrowser(url string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		name, args = "xdg-open", []string{url}
	case "darwin":
		name, args = "open", []string{url}
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return fmt.Errorf("no browser launcher for %s", runtime.GOOS)
	}
	return exec.Command(name, args...).Start()
}
