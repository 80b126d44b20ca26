// Package vitae is the Composition Root for the vitae toolset.
//
// It re-exports the tool façades and their configuration options, keeping
// the remote service clients behind clean package boundaries.
//
// Philosophy:
//
// Vitae is a set of independent automation tools for a hosted resume
// service. Each tool performs exactly one operation - create, read, list,
// update, section update or PDF export - as a single synchronous chain of
// HTTP calls. The remote service is the sole source of truth: vitae keeps
// no local state beyond the session cookie of the call in flight.
//
// Features:
//
//   - **One tool, one operation**: Each façade parses a JSON request, drives
//     the remote service, and renders one result string.
//   - **Section reconciliation**: Section-level updates go through a pure,
//     validated merge (`pkg/core.Reconcile`) before anything is submitted.
//   - **Round-trip fidelity**: Unknown document fields survive a fetch,
//     merge and submit cycle untouched.
//   - **No embedded secrets**: Credentials resolve from the request, the
//     environment, a .env file or a YAML config file - never from defaults.
//   - **File hosting**: Exported PDFs can be pushed to an XBackbone host.
//
// Usage:
//
//	// Build a toolset with functional options
//	ts := vitae.New(
//		vitae.WithLogger(logger),
//	)
//
//	// Apply a section operation
//	result := ts.UpdateResumeSection(ctx, `{
//		"resume_id": "abc123",
//		"section": "skills",
//		"operation": "add",
//		"data": {"items": [{"name": "Go", "level": 4}]}
//	}`)
package vitae
