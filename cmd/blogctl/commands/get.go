package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		post, err := apiClient().GetPost(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(post)
		}

		fmt.Printf("ID:          %s\n", post.ID)
		fmt.Printf("Name:        %s\n", post.Name)
		fmt.Printf("Description: %s\n", post.Description)
		if post.Image != nil {
			fmt.Printf("Image:       %s\n", truncate(*post.Image, 80))
		}
		fmt.Printf("Created:     %s\n", post.CreatedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("Updated:     %s\n", post.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
