package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

func TestBorrowedBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBorrowedLister(ctrl)
	mockSvc.EXPECT().
		BorrowedBooks(gomock.Any(), models.DateRange{}).
		Return([]models.BorrowedBook{
			{BookDB: models.BookDB{BookID: uuid.New(), Title: "Dune"}, BorrowerID: uuid.New()},
		}, nil)

	handler := NewBorrowedBooksHandler(mockSvc, services.Clock(testClock))

	req := httptest.NewRequest(http.MethodGet, "/books/borrowed", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var books []models.BorrowedBook
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &books))
	assert.Len(t, books, 1)
}

func TestBorrowedBooksHandler_CSVExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookID := uuid.New()
	borrowerID := uuid.New()
	borrowedAt := testNow.AddDate(0, 0, -3)
	dueDate := testNow.AddDate(0, 0, 11)

	from := testNow.AddDate(0, 0, -7)
	mockSvc := NewMockBorrowedLister(ctrl)
	mockSvc.EXPECT().
		BorrowedBooks(gomock.Any(), models.DateRange{From: &from}).
		Return([]models.BorrowedBook{
			{
				BookDB:     models.BookDB{BookID: bookID, Title: "Dune", Author: "Frank Herbert", ISBN: "978-0441172719"},
				BorrowerID: borrowerID,
				BorrowedAt: borrowedAt,
				DueDate:    dueDate,
			},
		}, nil)

	handler := NewBorrowedBooksHandler(mockSvc, services.Clock(testClock))

	req := httptest.NewRequest(http.MethodGet, "/books/borrowed?since=lastweek&export=csv", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="from-2026-03-08-borrowed-books.csv"`, rr.Header().Get("Content-Disposition"))

	lines := strings.Split(rr.Body.String(), "\r\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "id,title,author,ISBN,borrowerId,borrowedAt,dueDate", lines[0])
	assert.Equal(t,
		bookID.String()+",Dune,Frank Herbert,978-0441172719,"+borrowerID.String()+",2026-03-12,2026-03-26",
		lines[1])
}

func TestBorrowedBooksHandler_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewBorrowedBooksHandler(NewMockBorrowedLister(ctrl), services.Clock(testClock))

	req := httptest.NewRequest(http.MethodGet, "/books/borrowed?since=lastweek&from=2026-01-01", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 400, rr.Code)
}

func TestOverdueBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBorrowedLister(ctrl)
	mockSvc.EXPECT().
		OverdueBooks(gomock.Any(), models.DateRange{}).
		Return([]models.BorrowedBook{
			{BookDB: models.BookDB{BookID: uuid.New()}, BorrowerID: uuid.New(), DueDate: testNow.AddDate(0, 0, -2)},
		}, nil)

	handler := NewOverdueBooksHandler(mockSvc, services.Clock(testClock))

	req := httptest.NewRequest(http.MethodGet, "/books/borrowed/overdue", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var books []models.BorrowedBook
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &books))
	assert.Len(t, books, 1)
}
