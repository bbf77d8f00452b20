package commands

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"blogapi/internal/model"
)

var (
	createName        string
	createDescription string
	createImage       string
	createImageFile   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := resolveImage(createImage, createImageFile)
		if err != nil {
			return err
		}

		post, err := apiClient().CreatePost(cmd.Context(), model.PostInput{
			Name:        createName,
			Description: createDescription,
			Image:       image,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(post)
		}
		fmt.Printf("Created post %s\n", post.ID)
		return nil
	},
}

// resolveImage turns the mutually exclusive --image/--image-file flags into
// the single image value: a URL passed through as-is, or a local file
// inlined as a data URI.
func resolveImage(url, file string) (*string, error) {
	if url != "" && file != "" {
		return nil, fmt.Errorf("--image and --image-file are mutually exclusive")
	}
	if url != "" {
		return &url, nil
	}
	if file == "" {
		return nil, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read image file: %w", err)
	}
	mime := http.DetectContentType(data)
	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return &uri, nil
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Post name (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Post description (required)")
	createCmd.Flags().StringVar(&createImage, "image", "", "Image URL")
	createCmd.Flags().StringVar(&createImageFile, "image-file", "", "Local image file to inline as a data URI")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(createCmd)
}
