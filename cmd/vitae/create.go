package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	createTitle      string
	createSlug       string
	createVisibility string
	createBasics     string
	createSections   string
	createParams     string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new resume",
	Long:  `Create a new resume with the given title, optionally seeding basics and sections.`,
	Run: func(cmd *cobra.Command, args []string) {
		if createParams == "" && createTitle == "" {
			fmt.Println("Error: --title is required")
			cmd.Usage()
			os.Exit(1)
		}

		ts := newToolset()
		if createParams != "" {
			emit(ts.CreateResume(context.Background(), createParams))
			return
		}

		params := map[string]any{"title": createTitle}
		if createSlug != "" {
			params["slug"] = createSlug
		}
		if createVisibility != "" {
			params["visibility"] = createVisibility
		}
		if createBasics != "" {
			params["basics"] = parseJSONFlag("basics", createBasics)
		}
		if createSections != "" {
			params["sections"] = parseJSONFlag("sections", createSections)
		}
		if auth := authFields(); auth != nil {
			params["auth"] = auth
		}

		emit(ts.CreateResume(context.Background(), encodeParams(params)))
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Resume title")
	createCmd.Flags().StringVar(&createSlug, "slug", "", "Resume slug (generated when omitted)")
	createCmd.Flags().StringVar(&createVisibility, "visibility", "", "Resume visibility (public or private)")
	createCmd.Flags().StringVar(&createBasics, "basics", "", "Basics fields as inline JSON")
	createCmd.Flags().StringVar(&createSections, "sections", "", "Initial sections as inline JSON")
	createCmd.Flags().StringVar(&createParams, "params", "", "Raw JSON request (overrides the other flags)")
}
