package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

const msgMilestoneDeleted = "Milestone deleted successfully"

// MilestoneHandler handles HTTP requests for milestones.
type MilestoneHandler struct {
	svc ports.MilestoneService
}

// NewMilestoneHandler creates a new MilestoneHandler.
func NewMilestoneHandler(svc ports.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{svc: svc}
}

// ListMilestones handles GET /api/v1/milestones.
func (h *MilestoneHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.ListMilestones(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMilestoneResponses(ms))
}

// Progress handles GET /api/v1/milestones/progress.
func (h *MilestoneHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.Progress(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProgressResponses(progress))
}

// GetMilestone handles GET /api/v1/milestones/{id}.
func (h *MilestoneHandler) GetMilestone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	m, err := h.svc.GetMilestone(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMilestoneResponse(m))
}

// CreateMilestone handles POST /api/v1/milestones.
func (h *MilestoneHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMilestoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.svc.CreateMilestone(r.Context(), req.Draft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMilestoneResponse(m))
}

// UpdateMilestone handles PUT /api/v1/milestones/{id}.
func (h *MilestoneHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateMilestoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.svc.UpdateMilestone(r.Context(), id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMilestoneResponse(m))
}

// DeleteMilestone handles DELETE /api/v1/milestones/{id}.
func (h *MilestoneHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteMilestone(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, msgMilestoneDeleted)
}
