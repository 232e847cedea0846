package bookcopy

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createReq struct {
	BookID  string `json:"book_id,omitempty" validate:"omitempty,uuid"`
	Imprint string `json:"imprint" validate:"required,max=200"`
	Status  string `json:"status,omitempty" validate:"omitempty,loan_status"`
}

type checkoutReq struct {
	BorrowerID string `json:"borrower_id" validate:"required,uuid"`
	DueBack    string `json:"due_back" validate:"required"`
}

// copyResponse decorates the entity with its derived accessors.
type copyResponse struct {
	Copy
	StatusLabel string `json:"status_label"`
	IsOverdue   bool   `json:"is_overdue"`
}

func toResponse(c Copy) copyResponse {
	return copyResponse{
		Copy:        c,
		StatusLabel: c.Status.Label(),
		IsOverdue:   c.IsOverdue(),
	}
}

// Create handles POST /copies
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Imprint = strings.TrimSpace(req.Imprint)

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	c := &Copy{
		Imprint: req.Imprint,
		Status:  Status(req.Status),
	}
	if req.BookID != "" {
		c.BookID = &req.BookID
	}

	if err := h.service.Create(r.Context(), c); err != nil {
		if errors.Is(err, ErrInvalidReference) {
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_REFERENCE", "Referenced book does not exist", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, toResponse(*c))
}

// List handles GET /copies, ordered by due_back.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q := Query{
		Status: Status(r.URL.Query().Get("status")),
		BookID: r.URL.Query().Get("book_id"),
	}
	if q.Status != "" && !q.Status.Valid() {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "status must be one of m, o, a, r", nil)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	q.Limit = pageSize
	q.Offset = (page - 1) * pageSize

	copies, total, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	resp := make([]copyResponse, 0, len(copies))
	for _, c := range copies {
		resp = append(resp, toResponse(c))
	}

	httpx.JSONSuccess(w, resp, map[string]interface{}{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /copies/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Copy not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, toResponse(c), nil)
}

// Checkout handles POST /copies/{id}/checkout
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	dueBack, err := time.Parse("2006-01-02", req.DueBack)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "due_back must be YYYY-MM-DD", nil)
		return
	}

	c, err := h.service.Checkout(r.Context(), r.PathValue("id"), req.BorrowerID, dueBack)
	if err != nil {
		h.writeTransitionError(w, err)
		return
	}
	httpx.JSONSuccess(w, toResponse(c), nil)
}

// Return handles POST /copies/{id}/return
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Return(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeTransitionError(w, err)
		return
	}
	httpx.JSONSuccess(w, toResponse(c), nil)
}

// Reserve handles POST /copies/{id}/reserve. The reservation is for the
// authenticated borrower.
func (h *HTTPHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	borrowerID := httpx.BorrowerIDFrom(r)
	if borrowerID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	c, err := h.service.Reserve(r.Context(), r.PathValue("id"), borrowerID)
	if err != nil {
		h.writeTransitionError(w, err)
		return
	}
	httpx.JSONSuccess(w, toResponse(c), nil)
}

// SendToMaintenance handles POST /copies/{id}/maintenance
func (h *HTTPHandler) SendToMaintenance(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.SendToMaintenance(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeTransitionError(w, err)
		return
	}
	httpx.JSONSuccess(w, toResponse(c), nil)
}

// ListMyLoans handles GET /me/loans, the authenticated borrower's copies
// on loan ordered by due date.
func (h *HTTPHandler) ListMyLoans(w http.ResponseWriter, r *http.Request) {
	borrowerID := httpx.BorrowerIDFrom(r)
	if borrowerID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	copies, total, err := h.service.ListLoansFor(r.Context(), borrowerID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	resp := make([]copyResponse, 0, len(copies))
	for _, c := range copies {
		resp = append(resp, toResponse(c))
	}
	httpx.JSONSuccess(w, resp, map[string]interface{}{"total": total})
}

// Delete handles DELETE /copies/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Copy not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Copy not found", nil)
	case errors.Is(err, ErrNotAvailable):
		httpx.JSONError(w, http.StatusConflict, "NOT_AVAILABLE", "Copy is not available", nil)
	case errors.Is(err, ErrNotOnLoan):
		httpx.JSONError(w, http.StatusConflict, "NOT_ON_LOAN", "Copy is not on loan", nil)
	case errors.Is(err, ErrInvalidReference):
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_REFERENCE", "Referenced borrower does not exist", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
