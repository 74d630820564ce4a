package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// MsgNoHTML is returned when a report request carries no markup.
const MsgNoHTML = "No HTML provided"

// Compile-time check that ReportService implements ports.ReportService.
var _ ports.ReportService = (*ReportService)(nil)

// ReportService implements ports.ReportService by forwarding HTML to the
// external renderer.
type ReportService struct {
	renderer ports.ReportRenderer
	logger   *slog.Logger
}

// NewReportService creates a ReportService.
func NewReportService(renderer ports.ReportRenderer, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReportService{renderer: renderer, logger: logger}
}

// RenderProjectReport returns the PDF produced for html.
func (s *ReportService) RenderProjectReport(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, domain.Invalidf(MsgNoHTML)
	}

	s.logger.InfoContext(ctx, "rendering project report", slog.Int("html_bytes", len(html)))

	pdf, err := s.renderer.RenderPDF(ctx, html)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render project report",
			slog.String("operation", "RenderProjectReport"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return pdf, nil
}
