package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserReader(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any()).
		Return([]models.UserDB{
			{UserID: uuid.New(), Username: "jane", Role: models.RoleLibrarian},
			{UserID: uuid.New(), Username: "john", Role: models.RoleMember},
		}, nil)

	handler := NewListUsersHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var users []models.UserDB
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		paramValue   string
		mockSetup    func(m *MockUserReader)
		expectedCode int
	}{
		{
			name:       "success",
			paramValue: userID.String(),
			mockSetup: func(m *MockUserReader) {
				m.EXPECT().
					Get(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, Username: "jane"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:       "not found",
			paramValue: userID.String(),
			mockSetup: func(m *MockUserReader) {
				m.EXPECT().
					Get(gomock.Any(), userID).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "invalid id",
			paramValue:   "not-a-uuid",
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserReader(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGetUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.paramValue, nil)
			req = withURLParam(req, "userID", tt.paramValue)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		reqBody      UserUpdateRequest
		mockSetup    func(m *MockUserWriter)
		expectedCode int
	}{
		{
			name:    "success",
			reqBody: UserUpdateRequest{Email: "jane@example.com", Name: "Jane Doe", Role: models.RoleLibrarian},
			mockSetup: func(m *MockUserWriter) {
				m.EXPECT().
					Update(gomock.Any(), userID, "jane@example.com", "Jane Doe", models.RoleLibrarian).
					Return(&models.UserDB{UserID: userID, Email: "jane@example.com"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:    "not found",
			reqBody: UserUpdateRequest{Email: "jane@example.com"},
			mockSetup: func(m *MockUserWriter) {
				m.EXPECT().
					Update(gomock.Any(), userID, "jane@example.com", "", "").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
		},
		{
			name:    "email already exists",
			reqBody: UserUpdateRequest{Email: "taken@example.com"},
			mockSetup: func(m *MockUserWriter) {
				m.EXPECT().
					Update(gomock.Any(), userID, "taken@example.com", "", "").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
		},
		{
			name:         "invalid role",
			reqBody:      UserUpdateRequest{Role: "admin"},
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserWriter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateUserHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPut, "/users/"+userID.String(), bytes.NewBuffer(bodyBytes))
			req = withURLParam(req, "userID", userID.String())

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockUserWriter)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserWriter) {
				m.EXPECT().Delete(gomock.Any(), userID).Return(nil)
			},
			expectedCode: 204,
		},
		{
			name: "not found",
			mockSetup: func(m *MockUserWriter) {
				m.EXPECT().Delete(gomock.Any(), userID).Return(services.ErrUserNotFound)
			},
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserWriter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewDeleteUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/users/"+userID.String(), nil)
			req = withURLParam(req, "userID", userID.String())

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
