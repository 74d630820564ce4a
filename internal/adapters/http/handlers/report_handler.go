package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

const reportFilename = "project-report.pdf"

// ReportHandler renders HTML project reports to PDF.
type ReportHandler struct {
	svc ports.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc ports.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// RenderReport handles POST /api/v1/projects/report. The PDF is returned as
// an attachment.
func (h *ReportHandler) RenderReport(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pdf, err := h.svc.RenderProjectReport(r.Context(), req.HTML)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		slog.ErrorContext(r.Context(), "failed to write report", slog.Any("error", err))
	}
}
