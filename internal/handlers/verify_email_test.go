package handlers

import (
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

func TestVerifyEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		target        string
		mockSetup     func(m *MockEmailVerifier)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "success",
			target: "/auth/verify-email?token=token123",
			mockSetup: func(m *MockEmailVerifier) {
				m.EXPECT().
					VerifyEmail(gomock.Any(), "token123").
					Return(&models.UserDB{ID: userID, Email: "john@example.com", IsEmailVerified: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "missing token",
			target:        "/auth/verify-email",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Verification token is required",
		},
		{
			name:   "unknown or consumed token",
			target: "/auth/verify-email?token=stale",
			mockSetup: func(m *MockEmailVerifier) {
				m.EXPECT().
					VerifyEmail(gomock.Any(), "stale").
					Return(nil, services.ErrVerificationTokenNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Verification token not found",
		},
		{
			name:   "internal server error",
			target: "/auth/verify-email?token=token123",
			mockSetup: func(m *MockEmailVerifier) {
				m.EXPECT().
					VerifyEmail(gomock.Any(), "token123").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmailVerifier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewVerifyEmailHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp VerifyEmailErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var user models.PublicUser
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
			assert.Equal(t, userID, user.ID)
			assert.True(t, user.IsEmailVerified)
		})
	}
}
