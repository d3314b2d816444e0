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

func newUserService(ctrl *gomock.Controller) (*services.UserService, *services.MockUserReader, *services.MockUserWriter) {
	reader := services.NewMockUserReader(ctrl)
	writer := services.NewMockUserWriter(ctrl)
	return services.NewUserService(reader, writer), reader, writer
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newUserService(ctrl)

	userID := uuid.New()
	want := &models.UserDB{UserID: userID, Username: "alice"}

	reader.EXPECT().GetByID(gomock.Any(), userID).Return(want, nil)

	user, err := svc.Get(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, want, user)
}

func TestUserService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newUserService(ctrl)

	userID := uuid.New()
	reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

	_, err := svc.Get(context.Background(), userID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newUserService(ctrl)

	want := []models.UserDB{
		{UserID: uuid.New(), Username: "alice"},
		{UserID: uuid.New(), Username: "bob"},
	}

	reader.EXPECT().List(gomock.Any()).Return(want, nil)

	users, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, users)
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer := newUserService(ctrl)

	userID := uuid.New()

	tests := []struct {
		name      string
		updated   *models.UserDB
		writerErr error
		wantErr   error
	}{
		{name: "successful update", updated: &models.UserDB{UserID: userID, Email: "new@example.com"}},
		{name: "user does not exist", wantErr: services.ErrUserNotFound},
		{name: "duplicate email", writerErr: &pgconn.PgError{Code: "23505"}, wantErr: services.ErrUserAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer.EXPECT().
				Update(gomock.Any(), userID, "new@example.com", "Alice", models.RoleLibrarian).
				Return(tt.updated, tt.writerErr)

			user, err := svc.Update(context.Background(), userID, "new@example.com", "Alice", models.RoleLibrarian)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, user)
			}
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer := newUserService(ctrl)

	userID := uuid.New()

	tests := []struct {
		name      string
		writerErr error
		wantErr   error
	}{
		{name: "successful delete"},
		{name: "user does not exist", writerErr: sql.ErrNoRows, wantErr: services.ErrUserNotFound},
		{name: "writer error", writerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer.EXPECT().Delete(gomock.Any(), userID).Return(tt.writerErr)

			err := svc.Delete(context.Background(), userID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
