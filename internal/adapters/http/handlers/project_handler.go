// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// Messages returned by successful project writes.
const (
	msgProjectDeleted = "Project deleted successfully"
	msgStatusUpdated  = "Status updated to "
)

// ProjectHandler handles HTTP requests for projects and their nested
// milestone listing.
type ProjectHandler struct {
	svc        ports.ProjectService
	milestones ports.MilestoneService
}

// NewProjectHandler creates a new ProjectHandler with the given service ports.
func NewProjectHandler(svc ports.ProjectService, milestones ports.MilestoneService) *ProjectHandler {
	return &ProjectHandler{svc: svc, milestones: milestones}
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.Draft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCreateProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectDetailResponse(p))
}

// UpdateProject handles PUT /api/v1/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateProject(r.Context(), id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUpdateProjectResponse(updated))
}

// DeleteProject handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, msgProjectDeleted)
}

// UpdateProjectStatus handles PUT /api/v1/projects/{id}/status.
func (h *ProjectHandler) UpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProjectStatus(r.Context(), id, project.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, msgStatusUpdated+p.Status.String())
}

// ListProjectMilestones handles GET /api/v1/projects/{id}/milestones.
func (h *ProjectHandler) ListProjectMilestones(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	ms, err := h.milestones.ListProjectMilestones(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMilestoneResponses(ms))
}
