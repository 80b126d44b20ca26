package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	exportID        string
	exportOutput    string
	exportBase64    bool
	exportUpload    bool
	exportHostURL   string
	exportHostToken string
)

// exportCmd represents the PDF export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as PDF",
	Long:  `Download a resume as a PDF file and, unless disabled, upload it to an XBackbone host.`,
	Run: func(cmd *cobra.Command, args []string) {
		params := map[string]any{
			"resume_id":           exportID,
			"return_base64":       exportBase64,
			"upload_to_xbackbone": exportUpload,
		}
		if exportOutput != "" {
			params["output_path"] = exportOutput
		}
		if exportHostURL != "" {
			params["xbackbone_url"] = exportHostURL
		}
		if exportHostToken != "" {
			params["xbackbone_token"] = exportHostToken
		}
		if auth := authFields(); auth != nil {
			params["auth"] = auth
		}

		emit(newToolset().ExportPDF(context.Background(), encodeParams(params)))
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportID, "id", "", "Resume ID")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (defaults to resume.pdf)")
	exportCmd.Flags().BoolVar(&exportBase64, "base64", false, "Include the PDF base64-encoded in the result")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", true, "Upload the PDF to XBackbone")
	exportCmd.Flags().StringVar(&exportHostURL, "xbackbone-url", "", "XBackbone host URL")
	exportCmd.Flags().StringVar(&exportHostToken, "xbackbone-token", "", "XBackbone auth token")
	exportCmd.MarkFlagRequired("id")
}
