package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	updateID         string
	updateTitle      string
	updateSlug       string
	updateVisibility string
	updateBasics     string
	updateSections   string
	updateParams     string
)

// updateCmd represents the whole-document update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a resume",
	Long:  `Update a whole resume: scalar fields overwrite, basics merge key by key, section items merge by id or append.`,
	Run: func(cmd *cobra.Command, args []string) {
		if updateParams == "" && updateID == "" {
			fmt.Println("Error: --id is required")
			cmd.Usage()
			os.Exit(1)
		}

		ts := newToolset()
		if updateParams != "" {
			emit(ts.UpdateResume(context.Background(), updateParams))
			return
		}

		params := map[string]any{"resume_id": updateID}
		if updateTitle != "" {
			params["title"] = updateTitle
		}
		if updateSlug != "" {
			params["slug"] = updateSlug
		}
		if updateVisibility != "" {
			params["visibility"] = updateVisibility
		}
		if updateBasics != "" {
			params["basics"] = parseJSONFlag("basics", updateBasics)
		}
		if updateSections != "" {
			params["sections"] = parseJSONFlag("sections", updateSections)
		}
		if auth := authFields(); auth != nil {
			params["auth"] = auth
		}

		emit(ts.UpdateResume(context.Background(), encodeParams(params)))
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateID, "id", "", "Resume ID")
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateSlug, "slug", "", "New slug")
	updateCmd.Flags().StringVar(&updateVisibility, "visibility", "", "New visibility (public or private)")
	updateCmd.Flags().StringVar(&updateBasics, "basics", "", "Basics fields as inline JSON")
	updateCmd.Flags().StringVar(&updateSections, "sections", "", "Sections to merge as inline JSON")
	updateCmd.Flags().StringVar(&updateParams, "params", "", "Raw JSON request (overrides the other flags)")
}
