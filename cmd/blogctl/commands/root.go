package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blogapi/pkg/client"
)

var (
	// Global flags
	addr       string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "blogctl - command-line client for the blog post API",
	Long: `blogctl manages posts on a running blog API server.

It covers the full post lifecycle (list, get, create, update, delete)
and applies search and sort locally, the same way the web UI does.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "http://localhost:8080", "Base URL of the blog API server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func apiClient() *client.Client {
	return client.New(addr)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
