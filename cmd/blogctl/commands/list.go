package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"blogapi/internal/model"
	"blogapi/internal/view"
)

var (
	searchTerm string
	sortOrder  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, optionally filtered and sorted by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := apiClient().ListPosts(cmd.Context())
		if err != nil {
			return err
		}

		shown := posts
		if searchTerm != "" || cmd.Flags().Changed("sort") {
			shown = view.Apply(posts, searchTerm, view.ParseSortOrder(sortOrder))
		}

		if jsonOutput {
			return printJSON(shown)
		}

		if len(shown) == 0 {
			if searchTerm != "" {
				fmt.Println("No posts match the search.")
			} else {
				fmt.Println("No posts.")
			}
			return nil
		}
		for _, p := range shown {
			printPostLine(p)
		}
		return nil
	},
}

func printPostLine(p model.Post) {
	img := "-"
	if p.Image != nil {
		img = "yes"
	}
	fmt.Printf("%s  %-30s  image:%-3s  created:%s\n",
		p.ID, truncate(p.Name, 30), img, p.CreatedAt.Format("2006-01-02 15:04"))
}

// truncate shortens s to at most n runes, never splitting a multibyte
// character in the middle.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

func init() {
	listCmd.Flags().StringVar(&searchTerm, "search", "", "Case-insensitive substring match against post names")
	listCmd.Flags().StringVar(&sortOrder, "sort", "asc", "Sort by name: asc or desc")
	rootCmd.AddCommand(listCmd)
}
