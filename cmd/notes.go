package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearNotes bool

var notesCmd = &cobra.Command{
	Use:   "notes [id] [text...]",
	Short: "Show or set notes for a problem",
	Args:  cobra.MinimumNArgs(1),
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

		if len(args) == 1 && !clearNotes {
			if p.Notes == "" {
				fmt.Printf("📝 No notes for '%s'\n", p.Name)
				return
			}
			fmt.Printf("📝 %s\n%s\n", p.Name, p.Notes)
			return
		}

		text := strings.Join(args[1:], " ")
		if clearNotes {
			text = ""
		}
		a.catalog.SetNotes(p.ID, text)
		a.saveNotes()

		if text == "" {
			fmt.Printf("🗑️  Notes cleared for '%s'\n", p.Name)
			return
		}
		fmt.Printf("✅ Notes saved for '%s'\n", p.Name)
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.Flags().BoolVar(&clearNotes, "clear", false, "Remove the notes")
}
