package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				Username: "jane",
				Password: "secret",
				Email:    "jane@example.com",
				Name:     "Jane Doe",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "jane", "secret", "jane@example.com", "Jane Doe", "").
					Return(&models.UserDB{UserID: uuid.New(), Username: "jane", Role: models.RoleMember}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "user already exists",
			reqBody: RegisterRequest{
				Username: "alice",
				Password: "pass",
				Email:    "alice@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "pass", "alice@example.com", "", "").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
		},
		{
			name: "missing required fields",
			reqBody: RegisterRequest{
				Username: "bob",
			},
			expectedCode: 400,
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				Username: "bob",
				Password: "pass",
				Email:    "bob@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass", "bob@example.com", "", "").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 201 {
				var resp models.UserDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.reqBody.Username, resp.Username)
			}
		})
	}
}
