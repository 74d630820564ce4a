package ports

import "context"

// ReportRenderer defines the client port for the external HTML-to-PDF
// renderer. Implemented by the renderer adapter; called by the application
// layer.
type ReportRenderer interface {
	// RenderPDF converts an HTML document to PDF bytes.
	// Returns domain.ErrUnavailable when the renderer cannot be reached or
	// keeps failing.
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
