package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/vitae/pkg/core"
	"github.com/aretw0/vitae/pkg/rxresume"
	"github.com/aretw0/vitae/pkg/xbackbone"
)

type exportParams struct {
	ResumeID          string     `json:"resume_id"`
	OutputPath        string     `json:"output_path"`
	ReturnBase64      bool       `json:"return_base64"`
	UploadToXBackbone *bool      `json:"upload_to_xbackbone"`
	XBackboneURL      string     `json:"xbackbone_url"`
	XBackboneToken    string     `json:"xbackbone_token"`
	Auth              authParams `json:"auth"`

	Email    string `json:"email"`
	Password string `json:"password"`
	BaseURL  string `json:"base_url"`
}

func (p exportParams) legacy() authParams {
	return authParams{Email: p.Email, Password: p.Password, BaseURL: p.BaseURL}
}

type exportResult struct {
	Message            string `json:"message"`
	Base64Data         string `json:"base64_data,omitempty"`
	MimeType           string `json:"mime_type,omitempty"`
	FilePath           string `json:"file_path"`
	XBackboneURL       string `json:"xbackbone_url,omitempty"`
	XBackboneRawURL    string `json:"xbackbone_raw_url,omitempty"`
	XBackboneDeleteURL string `json:"xbackbone_delete_url,omitempty"`
}

// ExportPDF downloads a resume as PDF, saves it to output_path and, unless
// disabled, uploads it to an XBackbone host. The PDF bytes can additionally
// be returned base64-encoded.
func (t *Toolset) ExportPDF(ctx context.Context, paramsJSON string) string {
	var params exportParams
	if err := parseParams(paramsJSON, &params); err != nil {
		return renderError(err)
	}
	if params.ResumeID == "" {
		return renderError(&core.ValidationError{Msg: "Resume ID is required"})
	}
	outputPath := params.OutputPath
	if outputPath == "" {
		outputPath = "resume.pdf"
	}
	upload := params.UploadToXBackbone == nil || *params.UploadToXBackbone

	creds, err := t.cfg.credentials(params.Auth, params.legacy())
	if err != nil {
		return renderError(err)
	}
	client, err := t.session(ctx, creds)
	if err != nil {
		return renderError(err)
	}

	pdf, err := t.fetchPDF(ctx, client, params.ResumeID)
	if err != nil {
		return renderError(err)
	}

	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return renderError(err)
	}
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		absPath = outputPath
	}

	result := exportResult{FilePath: absPath}
	if params.ReturnBase64 {
		result.Message = "Resume downloaded successfully as base64"
		result.Base64Data = base64.StdEncoding.EncodeToString(pdf)
		result.MimeType = "application/pdf"
	} else {
		result.Message = fmt.Sprintf("Resume downloaded successfully and saved to: %s", outputPath)
	}

	if upload {
		hostURL, token, err := t.cfg.hosting(params.XBackboneURL, params.XBackboneToken)
		if err != nil {
			return renderError(err)
		}
		hosted, err := t.uploadPDF(ctx, hostURL, token, filepath.Base(outputPath), pdf)
		if err != nil {
			return renderError(err)
		}
		result.XBackboneURL = hosted.URL
		result.XBackboneRawURL = hosted.RawURL
		result.XBackboneDeleteURL = hosted.DeleteURL
		result.Message += " and uploaded to XBackbone"
	}

	return renderResult(result)
}

// fetchPDF obtains the PDF bytes. The print endpoint answers with either the
// file itself or a URL to it; anything else falls back to the export
// endpoint.
func (t *Toolset) fetchPDF(ctx context.Context, client *rxresume.Client, resumeID string) ([]byte, error) {
	res, err := client.Print(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	switch {
	case res.URL != "":
		return client.Download(ctx, res.URL)
	case res.PDF != nil:
		return res.PDF, nil
	}
	t.log("print gave no PDF, falling back to export", "id", resumeID)
	return client.Export(ctx, resumeID)
}

// uploadPDF pushes the file to the XBackbone host. Verification is disabled
// because these hosts typically run behind self-signed certificates.
func (t *Toolset) uploadPDF(ctx context.Context, hostURL, token, filename string, pdf []byte) (xbackbone.Upload, error) {
	opts := []xbackbone.Option{xbackbone.WithInsecureTLS(), xbackbone.WithLogger(t.logger)}
	if t.httpClient != nil {
		opts = append(opts, xbackbone.WithHTTPClient(t.httpClient))
	}
	host := xbackbone.New(hostURL, token, opts...)
	return host.Upload(ctx, filename, bytes.NewReader(pdf))
}
