package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

func newBookService(ctrl *gomock.Controller) (*services.BookService, *services.MockBookReader, *services.MockBookWriter) {
	reader := services.NewMockBookReader(ctrl)
	writer := services.NewMockBookWriter(ctrl)
	return services.NewBookService(reader, writer), reader, writer
}

func TestBookService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer := newBookService(ctrl)

	tests := []struct {
		name      string
		isbn      string
		writerErr error
		wantErr   error
	}{
		{name: "successful create", isbn: "978-0134190440"},
		{name: "duplicate ISBN", isbn: "978-0134190440", writerErr: &pgconn.PgError{Code: "23505"}, wantErr: services.ErrISBNExists},
		{name: "writer error", isbn: "978-0134190440", writerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *models.BookDB
			if tt.writerErr == nil {
				saved = &models.BookDB{BookID: uuid.New(), Title: "Dune", ISBN: tt.isbn}
			}
			writer.EXPECT().
				Save(gomock.Any(), "Dune", "Frank Herbert", tt.isbn, 3, "A-12").
				Return(saved, tt.writerErr)

			book, err := svc.Create(context.Background(), "Dune", "Frank Herbert", tt.isbn, 3, "A-12")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, saved, book)
			}
		})
	}
}

func TestBookService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newBookService(ctrl)

	bookID := uuid.New()
	want := &models.BookDB{BookID: bookID, Title: "Dune"}

	reader.EXPECT().GetByID(gomock.Any(), bookID).Return(want, nil)

	book, err := svc.Get(context.Background(), bookID)
	assert.NoError(t, err)
	assert.Equal(t, want, book)
}

func TestBookService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newBookService(ctrl)

	bookID := uuid.New()
	reader.EXPECT().GetByID(gomock.Any(), bookID).Return(nil, nil)

	_, err := svc.Get(context.Background(), bookID)
	assert.ErrorIs(t, err, services.ErrBookNotFound)
}

func TestBookService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newBookService(ctrl)

	title := "Du"
	filter := models.BookSearchFilter{Title: &title, Limit: 10}
	want := []models.BookDB{{BookID: uuid.New(), Title: "Dune"}}

	reader.EXPECT().Search(gomock.Any(), filter).Return(want, nil)

	books, err := svc.Search(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, want, books)
}

func TestBookService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer := newBookService(ctrl)

	bookID := uuid.New()

	tests := []struct {
		name      string
		updated   *models.BookDB
		writerErr error
		wantErr   error
	}{
		{name: "successful update", updated: &models.BookDB{BookID: bookID, Title: "Dune Messiah"}},
		{name: "book does not exist", updated: nil, wantErr: services.ErrBookNotFound},
		{name: "duplicate ISBN", writerErr: &pgconn.PgError{Code: "23505"}, wantErr: services.ErrISBNExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer.EXPECT().
				Update(gomock.Any(), bookID, "Dune Messiah", "Frank Herbert", "978-0441172696", 2, "A-13").
				Return(tt.updated, tt.writerErr)

			book, err := svc.Update(context.Background(), bookID, "Dune Messiah", "Frank Herbert", "978-0441172696", 2, "A-13")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, book)
			}
		})
	}
}

func TestBookService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer := newBookService(ctrl)

	bookID := uuid.New()

	tests := []struct {
		name      string
		writerErr error
		wantErr   error
	}{
		{name: "successful delete"},
		{name: "book does not exist", writerErr: sql.ErrNoRows, wantErr: services.ErrBookNotFound},
		{name: "writer error", writerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer.EXPECT().Delete(gomock.Any(), bookID).Return(tt.writerErr)

			err := svc.Delete(context.Background(), bookID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
