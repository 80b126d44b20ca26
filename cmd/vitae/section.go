package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	sectionID        string
	sectionName      string
	sectionOperation string
	sectionData      string
)

// sectionCmd represents the section-level update command
var sectionCmd = &cobra.Command{
	Use:   "update-section",
	Short: "Apply one operation to a resume section",
	Long: `Apply a single operation (update, add or remove) to one section of a resume.
The data flag carries the section payload: {"content": ...} for the summary,
{"items": [...]} for every other section.`,
	Run: func(cmd *cobra.Command, args []string) {
		params := map[string]any{
			"resume_id": sectionID,
			"section":   sectionName,
			"operation": sectionOperation,
			"data":      parseJSONFlag("data", sectionData),
		}
		if auth := authFields(); auth != nil {
			params["auth"] = auth
		}

		emit(newToolset().UpdateResumeSection(context.Background(), encodeParams(params)))
	},
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.Flags().StringVar(&sectionID, "id", "", "Resume ID")
	sectionCmd.Flags().StringVar(&sectionName, "section", "", "Section key (summary, skills, education, ...)")
	sectionCmd.Flags().StringVar(&sectionOperation, "operation", "", "Operation: update, add or remove")
	sectionCmd.Flags().StringVar(&sectionData, "data", "", "Section payload as inline JSON")
	sectionCmd.MarkFlagRequired("id")
	sectionCmd.MarkFlagRequired("section")
	sectionCmd.MarkFlagRequired("operation")
	sectionCmd.MarkFlagRequired("data")
}
