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

	"github.com/abertanha/movie-diary/internal/models"
	"github.com/abertanha/movie-diary/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		reqBody       RegisterRequest
		rawBody       string // when set, sent as-is (simulates invalid JSON)
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
	}{
		{
			name:    "success",
			reqBody: RegisterRequest{Email: "john@example.com", Password: "secret123!"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123!").
					Return(&models.UserDB{ID: userID, Email: "john@example.com"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "email already in use",
			reqBody: RegisterRequest{Email: "alice@example.com", Password: "secret123!"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "secret123!").
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "This email is already in use",
		},
		{
			name:    "internal server error",
			reqBody: RegisterRequest{Email: "bob@example.com", Password: "secret123!"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "secret123!").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			rawBody:       "{invalid json}",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "invalid email",
			reqBody:       RegisterRequest{Email: "not-an-email", Password: "secret123!"},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Please provide a valid email address",
		},
		{
			name:          "short password",
			reqBody:       RegisterRequest{Email: "john@example.com", Password: "short"},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Your password must have at least 8 characters",
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
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/user/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/user/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp RegisterErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			// Successful registration returns the public user, never credentials.
			var user map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
			assert.Equal(t, "john@example.com", user["email"])
			assert.NotContains(t, user, "password")
		})
	}
}
