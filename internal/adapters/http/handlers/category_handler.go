package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

const msgCategoryDeleted = "Expense Category deleted successfully"

// CategoryHandler handles HTTP requests for expense categories.
type CategoryHandler struct {
	svc ports.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories handles GET /api/v1/expense-categories.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ListCategories(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryResponses(cs))
}

// GetCategory handles GET /api/v1/expense-categories/{id}.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryResponse(c))
}

// CreateCategory handles POST /api/v1/expense-categories.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCategoryResponse(c))
}

// UpdateCategory handles PUT /api/v1/expense-categories/{id}.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), id, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryResponse(c))
}

// DeleteCategory handles DELETE /api/v1/expense-categories/{id}.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, msgCategoryDeleted)
}
