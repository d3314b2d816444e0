package handlers

import (
	"encoding/json"
	"errors"
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

func TestPopularBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockPopularityGetter)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockPopularityGetter) {
				m.EXPECT().
					PopularBooks(gomock.Any()).
					Return([]models.PopularBook{
						{BookDB: models.BookDB{BookID: uuid.New(), Title: "Dune"}, BorrowCount: 42},
					}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockPopularityGetter) {
				m.EXPECT().
					PopularBooks(gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPopularityGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewPopularBooksHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/analytics/popular-books", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestPopularAuthorsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPopularityGetter(ctrl)
	mockSvc.EXPECT().
		PopularAuthors(gomock.Any()).
		Return([]models.PopularAuthor{
			{Author: "Frank Herbert", BorrowCount: 42},
			{Author: "Ursula K. Le Guin", BorrowCount: 17},
		}, nil)

	handler := NewPopularAuthorsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/analytics/popular-authors", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var authors []models.PopularAuthor
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &authors))
	assert.Len(t, authors, 2)
	assert.Equal(t, "Frank Herbert", authors[0].Author)
}

func TestTransactionsAnalysisHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analysis := &models.TransactionsAnalysis{
		Transactions: []models.ExtendedTransaction{
			{
				BorrowingTransactionDB: models.BorrowingTransactionDB{TransactionID: uuid.New()},
				Returned:               true,
			},
			{
				BorrowingTransactionDB: models.BorrowingTransactionDB{TransactionID: uuid.New()},
				Overdue:                true,
			},
		},
		ReturnedCount: 1,
		OverdueCount:  1,
		BorrowedCount: 1,
	}

	mockSvc := NewMockTransactionsAnalyzer(ctrl)
	mockSvc.EXPECT().
		TransactionsAnalysis(gomock.Any(), models.DateRange{}).
		Return(analysis, nil)

	handler := NewTransactionsAnalysisHandler(mockSvc, services.Clock(testClock))

	req := httptest.NewRequest(http.MethodGet, "/analytics/transactions", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp models.TransactionsAnalysis
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ReturnedCount)
	assert.Equal(t, 1, resp.OverdueCount)
	assert.Equal(t, 1, resp.BorrowedCount)
	assert.Len(t, resp.Transactions, 2)
}

func TestTransactionsAnalysisHandler_CSVExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactionID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	borrowedAt := testNow.AddDate(0, 0, -20)
	dueDate := testNow.AddDate(0, 0, -6)
	returnedAt := testNow.AddDate(0, 0, -5)

	mockSvc := NewMockTransactionsAnalyzer(ctrl)
	mockSvc.EXPECT().
		TransactionsAnalysis(gomock.Any(), models.DateRange{}).
		Return(&models.TransactionsAnalysis{
			Transactions: []models.ExtendedTransaction{
				{
					BorrowingTransactionDB: models.BorrowingTransactionDB{
						TransactionID: transactionID,
						BookID:        bookID,
						UserID:        userID,
						BorrowedAt:    borrowedAt,
						DueDate:       dueDate,
						ReturnedAt:    &returnedAt,
					},
					Returned: true,
					Overdue:  true,
				},
			},
			ReturnedCount: 1,
			OverdueCount:  1,
		}, nil)

	handler := NewTransactionsAnalysisHandler(mockSvc, services.Clock(testClock))

	req := httptest.NewRequest(http.MethodGet, "/analytics/transactions?export=csv", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transactions-analysis.csv"`, rr.Header().Get("Content-Disposition"))

	lines := strings.Split(rr.Body.String(), "\r\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "id,bookId,userId,borrowedAt,dueDate,returnedAt,returned,overdue,returnedCount,overdueCount,borrowedCount", lines[0])
	assert.Equal(t,
		transactionID.String()+","+bookID.String()+","+userID.String()+",2026-02-23,2026-03-09,2026-03-10,true,true,1,1,0",
		lines[1])
}

func TestPopularBooksHandler_CSVExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookID := uuid.New()
	mockSvc := NewMockPopularityGetter(ctrl)
	mockSvc.EXPECT().
		PopularBooks(gomock.Any()).
		Return([]models.PopularBook{
			{BookDB: models.BookDB{BookID: bookID, Title: "Dune", Author: "Frank Herbert", ISBN: "isbn-1"}, BorrowCount: 42},
		}, nil)

	handler := NewPopularBooksHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/analytics/popular-books?export=csv", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="popular-books.csv"`, rr.Header().Get("Content-Disposition"))

	lines := strings.Split(rr.Body.String(), "\r\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "id,title,author,ISBN,borrowCount", lines[0])
	assert.Equal(t, bookID.String()+",Dune,Frank Herbert,isbn-1,42", lines[1])
}

func TestPopularAuthorsHandler_CSVExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPopularityGetter(ctrl)
	mockSvc.EXPECT().
		PopularAuthors(gomock.Any()).
		Return([]models.PopularAuthor{{Author: "Frank Herbert", BorrowCount: 42}}, nil)

	handler := NewPopularAuthorsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/analytics/popular-authors?export=csv", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, `attachment; filename="popular-authors.csv"`, rr.Header().Get("Content-Disposition"))

	lines := strings.Split(rr.Body.String(), "\r\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "author,borrowCount", lines[0])
	assert.Equal(t, "Frank Herbert,42", lines[1])
}

func TestTransactionsAnalysisHandler_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTransactionsAnalysisHandler(NewMockTransactionsAnalyzer(ctrl), services.Clock(testClock))

	req := httptest.NewRequest(http.MethodGet, "/analytics/transactions?since=always", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 400, rr.Code)
}
