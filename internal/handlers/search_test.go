package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
	"github.com/stephenzhang0529/ai-app-server/internal/services"
)

func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authOK := func(m *MockSearchTokener) {
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		m.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: 7, Username: "alice"}, nil)
	}

	startedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		tokenSetup   func(m *MockSearchTokener)
		mockSetup    func(m *MockSessionSearcher)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:       "success",
			query:      "?type=by_keyword&value=hello",
			tokenSetup: authOK,
			mockSetup: func(m *MockSessionSearcher) {
				m.EXPECT().
					Search(gomock.Any(), int64(7), false,
						models.SearchFilter{Type: models.SearchByKeyword, Value: "hello"}).
					Return([]models.SessionWithMessages{
						{
							SessionID: 3,
							Username:  "alice",
							ModelName: "deepseek-ai/DeepSeek-V3",
							StartedAt: startedAt,
							Messages: []models.ChatMessage{
								{MessageID: 5, SessionID: 3, Role: "user", Content: "hello there", CreatedAt: startedAt},
							},
						},
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"sessions": []any{
					map[string]any{
						"session_id": float64(3),
						"username":   "alice",
						"model_name": "deepseek-ai/DeepSeek-V3",
						"started_at": "2026-03-01T09:30:00Z",
						"messages": []any{
							map[string]any{
								"message_id": float64(5),
								"session_id": float64(3),
								"role":       "user",
								"content":    "hello there",
								"created_at": "2026-03-01T09:30:00Z",
							},
						},
					},
				},
			},
		},
		{
			name:       "no matches returns empty list",
			query:      "?type=all",
			tokenSetup: authOK,
			mockSetup: func(m *MockSessionSearcher) {
				m.EXPECT().
					Search(gomock.Any(), int64(7), false,
						models.SearchFilter{Type: models.SearchAll}).
					Return(nil, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"sessions": []any{}},
		},
		{
			name:       "invalid filter",
			query:      "?type=by_color&value=red",
			tokenSetup: authOK,
			mockSetup: func(m *MockSessionSearcher) {
				m.EXPECT().
					Search(gomock.Any(), int64(7), false,
						models.SearchFilter{Type: models.SearchType("by_color"), Value: "red"}).
					Return(nil, services.ErrInvalidFilter)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid search filter"},
		},
		{
			name:       "username search denied for non-admin",
			query:      "?type=by_username&value=bob",
			tokenSetup: authOK,
			mockSetup: func(m *MockSessionSearcher) {
				m.EXPECT().
					Search(gomock.Any(), int64(7), false,
						models.SearchFilter{Type: models.SearchByUsername, Value: "bob"}).
					Return(nil, services.ErrPermissionDenied)
			},
			expectedCode: 403,
			expectedBody: map[string]any{"error": "Username search is admin only"},
		},
		{
			name:       "internal server error",
			query:      "?type=all",
			tokenSetup: authOK,
			mockSetup: func(m *MockSessionSearcher) {
				m.EXPECT().
					Search(gomock.Any(), int64(7), false,
						models.SearchFilter{Type: models.SearchAll}).
					Return(nil, errors.New("db down"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:  "unauthorized",
			query: "?type=all",
			tokenSetup: func(m *MockSearchTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSessionSearcher(ctrl)
			mockTokener := NewMockSearchTokener(ctrl)
			tt.tokenSetup(mockTokener)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSearchHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/history/search"+tt.query, nil)
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
