package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_ChatCompletion(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		err := json.NewDecoder(r.Body).Decode(&captured)
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Hi there!"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	content, err := client.ChatCompletion(context.Background(), ChatRequest{
		Model: "deepseek-ai/DeepSeek-V3",
		Messages: []Message{
			TextMessage("user", "hello"),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Hi there!", content)

	assert.Equal(t, "deepseek-ai/DeepSeek-V3", captured["model"])
	assert.Equal(t, false, captured["stream"])
	assert.Equal(t, float64(DefaultMaxTokens), captured["max_tokens"])
	assert.Equal(t, []any{"null"}, captured["stop"])
	assert.Equal(t, DefaultTemperature, captured["temperature"])
	assert.Equal(t, DefaultTopP, captured["top_p"])
	assert.Equal(t, map[string]any{"type": "text"}, captured["response_format"])
	assert.Equal(t, []any{
		map[string]any{"role": "user", "content": "hello"},
	}, captured["messages"])
}

func TestClient_ChatCompletion_ExplicitParams(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&captured)
		assert.NoError(t, err)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "test-key")

	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Model:       "deepseek-ai/DeepSeek-V3",
		Messages:    []Message{TextMessage("user", "hello")},
		MaxTokens:   128,
		Temperature: 0.2,
		TopP:        0.9,
	})

	assert.NoError(t, err)
	assert.Equal(t, float64(128), captured["max_tokens"])
	assert.Equal(t, 0.2, captured["temperature"])
	assert.Equal(t, 0.9, captured["top_p"])
}

func TestClient_ChatCompletion_VisionMessage(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&captured)
		assert.NoError(t, err)
		w.Write([]byte(`{"choices":[{"message":{"content":"a cat"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Model:    "Qwen/Qwen2.5-VL-72B-Instruct",
		Messages: []Message{VisionMessage("what is this?", "https://example.com/cat.png")},
	})

	assert.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{
			"role": "user",
			"content": []any{
				map[string]any{"type": "text", "text": "what is this?"},
				map[string]any{
					"type":      "image_url",
					"image_url": map[string]any{"url": "https://example.com/cat.png", "detail": "auto"},
				},
			},
		},
	}, captured["messages"])
}

func TestClient_ChatCompletion_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Model:    "deepseek-ai/DeepSeek-V3",
		Messages: []Message{TextMessage("user", "hello")},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "inference API status 429")
}

func TestClient_ChatCompletion_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Model:    "deepseek-ai/DeepSeek-V3",
		Messages: []Message{TextMessage("user", "hello")},
	})

	assert.Error(t, err)
}

func TestClient_GenerateImage(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		err := json.NewDecoder(r.Body).Decode(&captured)
		assert.NoError(t, err)

		w.Write([]byte(`{"images":[{"url":"https://img.example.com/1.png"},{"url":"https://img.example.com/2.png"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	urls, err := client.GenerateImage(context.Background(), ImageRequest{
		Prompt:    "a lighthouse at dawn",
		BatchSize: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"https://img.example.com/1.png", "https://img.example.com/2.png"}, urls)

	assert.Equal(t, DefaultImageModel, captured["model"])
	assert.Equal(t, "a lighthouse at dawn", captured["prompt"])
	assert.Equal(t, DefaultImageSize, captured["image_size"])
	assert.Equal(t, float64(2), captured["batch_size"])
	assert.Equal(t, DefaultGuidance, captured["guidance_scale"])
}

func TestClient_GenerateImage_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	_, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "a lighthouse at dawn"})
	assert.Error(t, err)
}
