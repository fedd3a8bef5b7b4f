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
	"github.com/stephenzhang0529/ai-app-server/internal/llm"
)

func TestChatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authOK := func(m *MockChatTokener) {
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		m.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: 7, Username: "alice"}, nil)
	}

	tests := []struct {
		name         string
		body         any
		tokenSetup   func(m *MockChatTokener)
		mockSetup    func(m *MockChatCompleter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: ChatRequest{
				Model: "deepseek-ai/DeepSeek-V3",
				Messages: []ChatTurn{
					{Role: "user", Content: "hi"},
					{Role: "assistant", Content: "hello"},
					{Role: "user", Content: "tell me a joke"},
				},
				MaxTokens:   256,
				Temperature: 0.5,
				TopP:        0.9,
			},
			tokenSetup: authOK,
			mockSetup: func(m *MockChatCompleter) {
				m.EXPECT().
					ChatCompletion(gomock.Any(), llm.ChatRequest{
						Model: "deepseek-ai/DeepSeek-V3",
						Messages: []llm.Message{
							llm.TextMessage("user", "hi"),
							llm.TextMessage("assistant", "hello"),
							llm.TextMessage("user", "tell me a joke"),
						},
						MaxTokens:   256,
						Temperature: 0.5,
						TopP:        0.9,
					}).
					Return("why did the gopher cross the road?", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"content": "why did the gopher cross the road?"},
		},
		{
			name: "image turn becomes vision message",
			body: ChatRequest{
				Model: "Qwen/Qwen2.5-VL-72B-Instruct",
				Messages: []ChatTurn{
					{Role: "user", Content: "what is in this picture?", ImageURL: "https://example.com/cat.png"},
				},
			},
			tokenSetup: authOK,
			mockSetup: func(m *MockChatCompleter) {
				m.EXPECT().
					ChatCompletion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req llm.ChatRequest) (string, error) {
						assert.Len(t, req.Messages, 1)
						assert.Equal(t, llm.VisionMessage("what is in this picture?", "https://example.com/cat.png"), req.Messages[0])
						return "a cat", nil
					})
			},
			expectedCode: 200,
			expectedBody: map[string]any{"content": "a cat"},
		},
		{
			name: "missing model",
			body: ChatRequest{
				Messages: []ChatTurn{{Role: "user", Content: "hi"}},
			},
			tokenSetup:   authOK,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name: "empty messages",
			body: ChatRequest{
				Model: "deepseek-ai/DeepSeek-V3",
			},
			tokenSetup:   authOK,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name:         "invalid json",
			body:         "{invalid",
			tokenSetup:   authOK,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name: "inference api failure",
			body: ChatRequest{
				Model:    "deepseek-ai/DeepSeek-V3",
				Messages: []ChatTurn{{Role: "user", Content: "hi"}},
			},
			tokenSetup: authOK,
			mockSetup: func(m *MockChatCompleter) {
				m.EXPECT().
					ChatCompletion(gomock.Any(), gomock.Any()).
					Return("", errors.New("upstream 500"))
			},
			expectedCode: 502,
			expectedBody: map[string]any{"error": "Inference API failure"},
		},
		{
			name: "unauthorized",
			body: ChatRequest{
				Model:    "deepseek-ai/DeepSeek-V3",
				Messages: []ChatTurn{{Role: "user", Content: "hi"}},
			},
			tokenSetup: func(m *MockChatTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := NewMockChatCompleter(ctrl)
			mockTokener := NewMockChatTokener(ctrl)
			tt.tokenSetup(mockTokener)
			if tt.mockSetup != nil {
				tt.mockSetup(mockClient)
			}

			handler := NewChatHandler(mockClient, mockTokener)

			var bodyBytes []byte
			if s, ok := tt.body.(string); ok {
				bodyBytes = []byte(s)
			} else {
				bodyBytes, _ = json.Marshal(tt.body)
			}
			req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBuffer(bodyBytes))

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
