package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createReq struct {
	Title      string   `json:"title" validate:"required,max=200"`
	AuthorID   string   `json:"author_id,omitempty" validate:"omitempty,uuid"`
	Summary    string   `json:"summary" validate:"max=1000"`
	ISBN       string   `json:"isbn" validate:"required,max=13,isbn"`
	LanguageID string   `json:"language_id,omitempty" validate:"omitempty,uuid"`
	GenreIDs   []string `json:"genre_ids,omitempty" validate:"dive,uuid"`
}

type updateReq struct {
	Title      *string   `json:"title,omitempty" validate:"omitempty,max=200"`
	Summary    *string   `json:"summary,omitempty" validate:"omitempty,max=1000"`
	AuthorID   *string   `json:"author_id,omitempty" validate:"omitempty,uuid"`
	LanguageID *string   `json:"language_id,omitempty" validate:"omitempty,uuid"`
	GenreIDs   *[]string `json:"genre_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// bookResponse decorates the entity with its derived accessors.
type bookResponse struct {
	Book
	DetailURL    string `json:"detail_url"`
	DisplayGenre string `json:"display_genre"`
}

func toResponse(b Book) bookResponse {
	return bookResponse{
		Book:         b,
		DetailURL:    b.DetailURL(),
		DisplayGenre: b.DisplayGenre(),
	}
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.ISBN = strings.TrimSpace(req.ISBN)

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	b := &Book{
		Title:   req.Title,
		Summary: req.Summary,
		ISBN:    req.ISBN,
	}
	if req.AuthorID != "" {
		b.Author = &AuthorRef{ID: req.AuthorID}
	}
	if req.LanguageID != "" {
		b.Language = &LanguageRef{ID: req.LanguageID}
	}

	if err := h.service.Create(r.Context(), b, req.GenreIDs); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateISBN):
			httpx.JSONError(w, http.StatusConflict, "DUPLICATE_ISBN", "A book with this ISBN already exists", nil)
		case errors.Is(err, ErrInvalidReference):
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_REFERENCE", "Referenced author, language or genre does not exist", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(w, toResponse(*b))
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q := Query{
		Title:    r.URL.Query().Get("title"),
		AuthorID: r.URL.Query().Get("author_id"),
		GenreID:  r.URL.Query().Get("genre_id"),
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

	books, total, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	resp := make([]bookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, toResponse(b))
	}

	httpx.JSONSuccess(w, resp, map[string]interface{}{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, toResponse(b), nil)
}

// Update handles PATCH /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	b, err := h.service.Update(r.Context(), r.PathValue("id"), UpdateParams{
		Title:      req.Title,
		Summary:    req.Summary,
		AuthorID:   req.AuthorID,
		LanguageID: req.LanguageID,
		GenreIDs:   req.GenreIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrInvalidReference):
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_REFERENCE", "Referenced author, language or genre does not exist", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, toResponse(b), nil)
}

// Delete handles DELETE /books/{id}. Deletion is blocked while physical
// copies of the book exist.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrHasCopies):
			httpx.JSONError(w, http.StatusConflict, "HAS_COPIES", "Book still has copies and cannot be deleted", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessNoContent(w)
}
