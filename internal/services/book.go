package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// Error variables
var (
	ErrBookNotFound = errors.New("book does not exist")
	ErrISBNExists   = errors.New("ISBN already exists")
)

// BookReader defines read-only operations for books.
type BookReader interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
	Search(ctx context.Context, filter models.BookSearchFilter) ([]models.BookDB, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Save(ctx context.Context, title, author, isbn string, availableQuantity int, shelfLocation string) (*models.BookDB, error)
	Update(ctx context.Context, bookID uuid.UUID, title, author, isbn string, availableQuantity int, shelfLocation string) (*models.BookDB, error)
	Delete(ctx context.Context, bookID uuid.UUID) error
}

// BookService handles book administration and search.
type BookService struct {
	reader BookReader
	writer BookWriter
}

// NewBookService creates a new BookService instance.
func NewBookService(reader BookReader, writer BookWriter) *BookService {
	return &BookService{
		reader: reader,
		writer: writer,
	}
}

// Create adds a new book to the catalog.
func (svc *BookService) Create(ctx context.Context, title, author, isbn string, availableQuantity int, shelfLocation string) (*models.BookDB, error) {
	book, err := svc.writer.Save(ctx, title, author, isbn, availableQuantity, shelfLocation)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrISBNExists
		}
		logger.Log.Errorw("failed to save book", "isbn", isbn, "error", err)
		return nil, err
	}
	return book, nil
}

// Get retrieves a book by ID.
func (svc *BookService) Get(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	book, err := svc.reader.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Search retrieves books matching the filter.
func (svc *BookService) Search(ctx context.Context, filter models.BookSearchFilter) ([]models.BookDB, error) {
	books, err := svc.reader.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to search books", "error", err)
		return nil, err
	}
	return books, nil
}

// Update overwrites the attributes of an existing book.
func (svc *BookService) Update(ctx context.Context, bookID uuid.UUID, title, author, isbn string, availableQuantity int, shelfLocation string) (*models.BookDB, error) {
	book, err := svc.writer.Update(ctx, bookID, title, author, isbn, availableQuantity, shelfLocation)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrISBNExists
		}
		logger.Log.Errorw("failed to update book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Delete removes a book from the catalog.
func (svc *BookService) Delete(ctx context.Context, bookID uuid.UUID) error {
	if err := svc.writer.Delete(ctx, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookNotFound
		}
		logger.Log.Errorw("failed to delete book", "bookID", bookID, "error", err)
		return err
	}
	return nil
}
