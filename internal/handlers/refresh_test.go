package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		refreshToken string
		mockSetup    func(m *MockRefresher)
		expectedCode int
		expectedBody map[string]any
		rawBody      bool
	}{
		{
			name:         "success",
			refreshToken: "OLD_REFRESH",
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "OLD_REFRESH").
					Return(&jwt.TokenPair{AccessToken: "NEW_ACCESS", RefreshToken: "NEW_REFRESH"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"access_token": "NEW_ACCESS", "refresh_token": "NEW_REFRESH"},
		},
		{
			name:         "revoked token",
			refreshToken: "REVOKED",
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "REVOKED").
					Return(nil, jwt.ErrTokenRevoked)
			},
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Invalid or expired refresh token"},
		},
		{
			name:         "access token misuse",
			refreshToken: "ACCESS_TOKEN",
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "ACCESS_TOKEN").
					Return(nil, jwt.ErrWrongTokenUse)
			},
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Invalid or expired refresh token"},
		},
		{
			name:         "internal server error",
			refreshToken: "SOME_TOKEN",
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "SOME_TOKEN").
					Return(nil, errors.New("store down"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "empty token",
			refreshToken: "",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRefresher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRefreshHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewBufferString("not json"))
			} else {
				bodyBytes, _ := json.Marshal(RefreshRequest{RefreshToken: tt.refreshToken})
				req = httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

// A real token service behind the handler: garbage and expired refresh
// tokens are client errors, never 500s.
func TestRefreshHandler_RejectsUnusableTokens(t *testing.T) {
	ctx := context.Background()

	svc := jwt.NewWithStore("test-secret", time.Minute, -time.Minute, jwt.NewMemoryTokenStore())
	handler := NewRefreshHandler(svc)

	expiredPair, err := svc.GeneratePair(ctx, 42, "alice", false)
	assert.NoError(t, err)

	for _, token := range []string{"not-a-jwt", expiredPair.RefreshToken} {
		bodyBytes, _ := json.Marshal(RefreshRequest{RefreshToken: token})
		req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewBuffer(bodyBytes))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 401, rr.Code)

		var resp map[string]any
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"error": "Invalid or expired refresh token"}, resp)
	}
}
