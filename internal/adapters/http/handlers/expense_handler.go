package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

const msgExpenseDeleted = "Expense deleted successfully"

// ExpenseHandler handles HTTP requests for employee expenses.
type ExpenseHandler struct {
	svc ports.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// ListExpenses handles GET /api/v1/expenses.
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.ListExpenses(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExpenseResponses(es))
}

// ListEmployeeExpenses handles GET /api/v1/expenses/employee/{employeeId}.
func (h *ExpenseHandler) ListEmployeeExpenses(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathParamOrFail(w, r, "employeeId")
	if !ok {
		return
	}

	es, err := h.svc.ListEmployeeExpenses(r.Context(), employeeID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExpenseResponses(es))
}

// GetExpense handles GET /api/v1/expenses/{id}.
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	e, err := h.svc.GetExpense(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExpenseResponse(e))
}

// CreateExpense handles POST /api/v1/expenses.
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.svc.CreateExpense(r.Context(), req.Draft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToExpenseResponse(e))
}

// UpdateExpense handles PUT /api/v1/expenses/{id}.
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.svc.UpdateExpense(r.Context(), id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExpenseResponse(e))
}

// DeleteExpense handles DELETE /api/v1/expenses/{id}.
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrFail(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, msgExpenseDeleted)
}
