package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogapi/internal/model"
)

var (
	updateName        string
	updateDescription string
	updateImage       string
	updateImageFile   string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a post's name, description, and image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := resolveImage(updateImage, updateImageFile)
		if err != nil {
			return err
		}

		post, err := apiClient().UpdatePost(cmd.Context(), args[0], model.PostInput{
			Name:        updateName,
			Description: updateDescription,
			Image:       image,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(post)
		}
		fmt.Printf("Updated post %s\n", post.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Post name (required)")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Post description (required)")
	updateCmd.Flags().StringVar(&updateImage, "image", "", "Image URL")
	updateCmd.Flags().StringVar(&updateImageFile, "image-file", "", "Local image file to inline as a data URI")
	updateCmd.MarkFlagRequired("name")
	updateCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(updateCmd)
}
