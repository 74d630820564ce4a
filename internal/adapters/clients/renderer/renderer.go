// Package renderer is the outbound adapter for the HTML-to-PDF rendering
// service. It speaks the Gotenberg form API: the document is uploaded as
// index.html in a multipart form and the PDF comes back as the body.
package renderer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/jsamuelsen11/projectledger/internal/platform/httpclient"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// ConvertHTMLPath is the renderer route for HTML documents.
const ConvertHTMLPath = "/forms/chromium/convert/html"

// Compile-time interface checks.
var (
	_ ports.ReportRenderer = (*Client)(nil)
	_ ports.HealthChecker  = (*Client)(nil)
)

// Client implements ports.ReportRenderer on top of httpclient.Client, which
// supplies circuit breaking, rate limiting, retries and tracing.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// New creates a renderer Client.
func New(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{http: client, logger: logger}
}

// RenderPDF uploads html and returns the rendered PDF. The document size cap
// comes from the renderer client config.
func (c *Client) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	form, contentType, err := htmlForm(html)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Send(ctx, httpclient.Request{
		Method:      http.MethodPost,
		Path:        ConvertHTMLPath,
		ContentType: contentType,
		Accept:      "application/pdf",
		Body:        form,
	})
	switch {
	case resp != nil && (err != nil || resp.StatusCode != http.StatusOK):
		// Exhausted retries still hand back the last response.
		c.logger.ErrorContext(ctx, "renderer returned an error status",
			slog.String("operation", "RenderPDF"),
			slog.Int("status", resp.StatusCode),
		)
		return nil, translateHTTPError(resp)
	case err != nil:
		c.logger.ErrorContext(ctx, "renderer request failed",
			slog.String("operation", "RenderPDF"),
			slog.Any("error", err),
		)
		return nil, translateTransportError(err)
	}

	return resp.Body, nil
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the circuit breaker state of the underlying client.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

// htmlForm builds the multipart body carrying html as index.html.
func htmlForm(html string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, "", fmt.Errorf("writing form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
