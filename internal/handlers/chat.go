package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/llm"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
)

// ChatTokener defines only the token methods needed by this handler.
type ChatTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ChatCompleter defines the interface that the inference client must implement.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, req llm.ChatRequest) (string, error)
}

// ChatTurn is one conversation turn sent by the client. A turn carrying an
// image URL becomes a multimodal message for vision models.
// swagger:model ChatTurn
type ChatTurn struct {
	// Role of the speaker
	// required: true
	// default: user
	Role string `json:"role"`

	// Text content
	// required: true
	// default: Hello!
	Content string `json:"content"`

	// Optional image URL for vision requests
	ImageURL string `json:"image_url,omitempty"`
}

// ChatRequest represents the JSON body for a chat completion
// swagger:model ChatRequest
type ChatRequest struct {
	// Model to query
	// required: true
	// default: deepseek-ai/DeepSeek-V3
	Model string `json:"model"`

	// Conversation so far, oldest first
	// required: true
	Messages []ChatTurn `json:"messages"`

	// Maximum tokens to generate
	// default: 512
	MaxTokens int `json:"max_tokens,omitempty"`

	// Sampling temperature
	// default: 0.7
	Temperature float64 `json:"temperature,omitempty"`

	// Nucleus sampling parameter
	// default: 0.7
	TopP float64 `json:"top_p,omitempty"`
}

// ChatResponse represents a successful chat completion
// swagger:model ChatResponse
type ChatResponse struct {
	// Assistant reply
	// default: Hi there!
	Content string `json:"content"`
}

// ChatErrorResponse represents an error response for chat completion
// swagger:model ChatErrorResponse
type ChatErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewChatHandler returns an HTTP handler that proxies a conversation to the
// inference API and returns the assistant reply. The server never stores the
// exchange; the client saves finished conversations through /history.
// @Summary Chat completion
// @Description Sends the conversation to the configured inference API. Turns with an image URL are sent as multimodal content for vision models.
// @Tags llm
// @Accept json
// @Produce json
// @Param chatRequest body handlers.ChatRequest true "Conversation to complete"
// @Success 200 {object} handlers.ChatResponse "Assistant reply"
// @Failure 400 {object} handlers.ChatErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ChatErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ChatErrorResponse "Inference API failure"
// @Router /chat [post]
// @Security BearerAuth
func NewChatHandler(
	client ChatCompleter,
	tokenGetter ChatTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model == "" || len(req.Messages) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChatErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		messages := make([]llm.Message, 0, len(req.Messages))
		for _, turn := range req.Messages {
			if turn.ImageURL != "" {
				messages = append(messages, llm.VisionMessage(turn.Content, turn.ImageURL))
				continue
			}
			messages = append(messages, llm.TextMessage(turn.Role, turn.Content))
		}

		content, err := client.ChatCompletion(r.Context(), llm.ChatRequest{
			Model:       req.Model,
			Messages:    messages,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
			TopP:        req.TopP,
		})
		if err != nil {
			logger.Log.Errorw("chat completion failed", "userID", claims.UserID, "model", req.Model, "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(ChatErrorResponse{
				Error: "Inference API failure",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatResponse{Content: content})
	}
}
