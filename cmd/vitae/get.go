package main

import (
	"context"

	"github.com/spf13/cobra"
)

var getID string

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a resume by id",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		params := map[string]any{"resume_id": getID}
		if auth := authFields(); auth != nil {
			params["auth"] = auth
		}

		emit(newToolset().GetResume(context.Background(), encodeParams(params)))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getID, "id", "", "Resume ID")
	getCmd.MarkFlagRequired("id")
}
