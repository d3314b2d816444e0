package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

// BookReader defines the read operations the handlers need.
type BookReader interface {
	Get(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
	Search(ctx context.Context, filter models.BookSearchFilter) ([]models.BookDB, error)
}

// BookWriter defines the write operations the handlers need.
type BookWriter interface {
	Create(ctx context.Context, title, author, isbn string, availableQuantity int, shelfLocation string) (*models.BookDB, error)
	Update(ctx context.Context, bookID uuid.UUID, title, author, isbn string, availableQuantity int, shelfLocation string) (*models.BookDB, error)
	Delete(ctx context.Context, bookID uuid.UUID) error
}

// BookRequest represents the JSON body for creating or updating a book
// swagger:model BookRequest
type BookRequest struct {
	// Book title
	// required: true
	// default: The Go Programming Language
	Title string `json:"title"`

	// Book author
	// required: true
	// default: Alan A. A. Donovan
	Author string `json:"author"`

	// Unique ISBN
	// required: true
	// default: 978-0134190440
	ISBN string `json:"ISBN"`

	// Copies on the shelf
	// default: 3
	AvailableQuantity int `json:"availableQuantity"`

	// Physical shelf location
	// default: A-12
	ShelfLocation string `json:"shelfLocation"`
}

// BookErrorResponse represents an error response for book operations
// swagger:model BookErrorResponse
type BookErrorResponse struct {
	// Error message
	// default: Book does not exist
	Error string `json:"error"`
}

// NewCreateBookHandler returns an HTTP handler for adding a book.
// @Summary Add a new book
// @Description Adds a book to the catalog. ISBN must be unique.
// @Tags books
// @Accept json
// @Produce json
// @Param bookRequest body handlers.BookRequest true "Book attributes"
// @Success 201 {object} models.BookDB "Book created"
// @Failure 400 {object} handlers.BookErrorResponse "ISBN already exists / invalid request"
// @Router /books [post]
// @Security BearerAuth
func NewCreateBookHandler(svc BookWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Title == "" || req.Author == "" || req.ISBN == "" || req.AvailableQuantity < 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Title, author and ISBN are required"})
			return
		}

		book, err := svc.Create(r.Context(), req.Title, req.Author, req.ISBN, req.AvailableQuantity, req.ShelfLocation)
		if err != nil {
			switch err {
			case services.ErrISBNExists:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "ISBN already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(book)
	}
}

// NewGetBookHandler returns an HTTP handler for fetching a book by ID.
// @Summary Get a book
// @Tags books
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 200 {object} models.BookDB "Book"
// @Failure 404 {object} handlers.BookErrorResponse "Book does not exist"
// @Router /books/{bookID} [get]
// @Security BearerAuth
func NewGetBookHandler(svc BookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid book ID"})
			return
		}

		book, err := svc.Get(r.Context(), bookID)
		if err != nil {
			switch err {
			case services.ErrBookNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Book does not exist"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(book)
	}
}

// NewSearchBooksHandler returns an HTTP handler for searching the catalog.
// @Summary Search books
// @Description Searches by title or author prefix (case-insensitive) or exact ISBN. Results are paginated.
// @Tags books
// @Produce json
// @Param title query string false "Title prefix"
// @Param author query string false "Author prefix"
// @Param isbn query string false "Exact ISBN"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.BookDB "Matching books"
// @Failure 400 {object} handlers.BookErrorResponse "Invalid pagination"
// @Router /books [get]
// @Security BearerAuth
func NewSearchBooksHandler(svc BookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseBookFilter(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid pagination parameters"})
			return
		}

		books, err := svc.Search(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(books)
	}
}

// NewUpdateBookHandler returns an HTTP handler for updating a book.
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Param bookID path string true "Book ID"
// @Param bookRequest body handlers.BookRequest true "Book attributes"
// @Success 200 {object} models.BookDB "Updated book"
// @Failure 400 {object} handlers.BookErrorResponse "ISBN already exists / invalid request"
// @Failure 404 {object} handlers.BookErrorResponse "Book does not exist"
// @Router /books/{bookID} [put]
// @Security BearerAuth
func NewUpdateBookHandler(svc BookWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid book ID"})
			return
		}

		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.AvailableQuantity < 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Available quantity cannot be negative"})
			return
		}

		book, err := svc.Update(r.Context(), bookID, req.Title, req.Author, req.ISBN, req.AvailableQuantity, req.ShelfLocation)
		if err != nil {
			switch err {
			case services.ErrBookNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Book does not exist"})
			case services.ErrISBNExists:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "ISBN already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(book)
	}
}

// NewDeleteBookHandler returns an HTTP handler for deleting a book.
// @Summary Delete a book
// @Tags books
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 204 "Book deleted"
// @Failure 404 {object} handlers.BookErrorResponse "Book does not exist"
// @Router /books/{bookID} [delete]
// @Security BearerAuth
func NewDeleteBookHandler(svc BookWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid book ID"})
			return
		}

		if err := svc.Delete(r.Context(), bookID); err != nil {
			switch err {
			case services.ErrBookNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Book does not exist"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parseBookFilter(r *http.Request) (models.BookSearchFilter, error) {
	filter := models.BookSearchFilter{Limit: 10}

	q := r.URL.Query()
	if title := q.Get("title"); title != "" {
		filter.Title = &title
	}
	if author := q.Get("author"); author != "" {
		filter.Author = &author
	}
	if isbn := q.Get("isbn"); isbn != "" {
		filter.ISBN = &isbn
	}

	if offset := q.Get("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil || parsed < 0 {
			return filter, strconv.ErrSyntax
		}
		filter.Offset = parsed
	}
	if limit := q.Get("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 1 {
			return filter, strconv.ErrSyntax
		}
		filter.Limit = parsed
	}

	return filter, nil
}
