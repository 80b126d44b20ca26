package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	listPublicURLs bool
	listFilter     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all resumes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		params := map[string]any{
			"include_public_urls": listPublicURLs,
		}
		if listFilter != "" {
			params["filter"] = listFilter
		}
		if auth := authFields(); auth != nil {
			params["auth"] = auth
		}

		emit(newToolset().ListResumes(context.Background(), encodeParams(params)))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listPublicURLs, "public-urls", true, "Include public URLs for public resumes")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Glob pattern matched against slug and title")
}
