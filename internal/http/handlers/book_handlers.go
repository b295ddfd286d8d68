package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bookshelf/bookshelf-api/internal/domain"
	"github.com/bookshelf/bookshelf-api/internal/http/response"
	"github.com/bookshelf/bookshelf-api/internal/view"
	"github.com/go-chi/chi/v5"
)

// DashboardPage handles GET /dashboard
func (h *Handlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, "dashboard.html", nil)
}

// CreateBook handles POST /create-item
func (h *Handlers) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req domain.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid data format!")
		return
	}

	book, err := h.bookService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Invalid Data")
		return
	}

	response.Created(w, "book details created successfully", book)
}

// EditBook handles POST /edit-item/{id}
func (h *Handlers) EditBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Missing data or id")
		return
	}

	var req domain.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid data format!")
		return
	}
	if req.Title == "" || req.Author == "" || req.Price == "" || req.Category == "" {
		response.BadRequest(w, "Missing data or id")
		return
	}

	book, err := h.bookService.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, "Invalid Data")
		return
	}

	response.OK(w, "Book updated successfully!", book)
}

// GetBook handles GET /get-book/{id}
func (h *Handlers) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "invalid book id")
		return
	}

	book, err := h.bookService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Invalid Data")
		return
	}

	response.OK(w, "Book found successfully!", book)
}

// DeleteBook handles POST /delete-item
func (h *Handlers) DeleteBook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID domain.Numeric `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid data format!")
		return
	}
	if req.ID == "" {
		response.BadRequest(w, "missing id")
		return
	}
	id, err := strconv.ParseInt(string(req.ID), 10, 64)
	if err != nil {
		response.BadRequest(w, "missing id")
		return
	}

	book, err := h.bookService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Invalid Data")
		return
	}

	response.OK(w, "Book deleted successfully!", book)
}

// DashboardData handles GET /dashboarddata
func (h *Handlers) DashboardData(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Invalid Data")
		return
	}

	response.OK(w, "Read Success", books)
}
