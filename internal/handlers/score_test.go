package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
)

func TestRecordScoreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authOK := func(m *MockScoreTokener) {
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		m.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: 7, Username: "alice"}, nil)
	}

	tests := []struct {
		name         string
		body         any
		tokenSetup   func(m *MockScoreTokener)
		mockSetup    func(m *MockScoreRecorder)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:       "success",
			body:       RecordScoreRequest{GameName: "snake", Score: 42},
			tokenSetup: authOK,
			mockSetup: func(m *MockScoreRecorder) {
				m.EXPECT().
					RecordScore(gomock.Any(), int64(7), "snake", int64(42)).
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"message": "Score recorded"},
		},
		{
			name:       "zero score is valid",
			body:       RecordScoreRequest{GameName: "snake", Score: 0},
			tokenSetup: authOK,
			mockSetup: func(m *MockScoreRecorder) {
				m.EXPECT().
					RecordScore(gomock.Any(), int64(7), "snake", int64(0)).
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"message": "Score recorded"},
		},
		{
			name:         "missing game name",
			body:         RecordScoreRequest{Score: 42},
			tokenSetup:   authOK,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name:       "negative score is not rejected",
			body:       RecordScoreRequest{GameName: "snake", Score: -1},
			tokenSetup: authOK,
			mockSetup: func(m *MockScoreRecorder) {
				m.EXPECT().
					RecordScore(gomock.Any(), int64(7), "snake", int64(-1)).
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"message": "Score recorded"},
		},
		{
			name:         "invalid json",
			body:         "{invalid",
			tokenSetup:   authOK,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name:       "internal server error",
			body:       RecordScoreRequest{GameName: "snake", Score: 42},
			tokenSetup: authOK,
			mockSetup: func(m *MockScoreRecorder) {
				m.EXPECT().
					RecordScore(gomock.Any(), int64(7), "snake", int64(42)).
					Return(errors.New("db down"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name: "unauthorized",
			body: RecordScoreRequest{GameName: "snake", Score: 42},
			tokenSetup: func(m *MockScoreTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockScoreRecorder(ctrl)
			mockTokener := NewMockScoreTokener(ctrl)
			tt.tokenSetup(mockTokener)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRecordScoreHandler(mockSvc, mockTokener)

			var bodyBytes []byte
			if s, ok := tt.body.(string); ok {
				bodyBytes = []byte(s)
			} else {
				bodyBytes, _ = json.Marshal(tt.body)
			}
			req := httptest.NewRequest(http.MethodPost, "/scores", bytes.NewBuffer(bodyBytes))

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
