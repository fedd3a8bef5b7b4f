package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stephenzhang0529/ai-app-server/internal/logger"
)

// Defaults mirror what the UI pages send when the user leaves the sliders alone.
const (
	DefaultMaxTokens     = 512
	DefaultTemperature   = 0.7
	DefaultTopP          = 0.7
	DefaultImageModel    = "stabilityai/stable-diffusion-3-5-large"
	DefaultImageSize     = "1024x1024"
	DefaultBatchSize     = 1
	DefaultGuidance      = 7.0
	defaultClientTimeout = 60 * time.Second
)

// Message is one chat turn. Content is either a plain string or a list of
// Part values for vision requests.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// Part is one element of a multimodal message content list.
type Part struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL points at an image for vision models.
type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// TextMessage builds a plain text chat turn.
func TextMessage(role, text string) Message {
	return Message{Role: role, Content: text}
}

// VisionMessage builds a user turn combining a prompt with an image URL.
func VisionMessage(text, imageURL string) Message {
	return Message{
		Role: "user",
		Content: []Part{
			{Type: "text", Text: text},
			{Type: "image_url", ImageURL: &ImageURL{URL: imageURL, Detail: "auto"}},
		},
	}
}

// ChatRequest describes one chat completion call.
type ChatRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// ImageRequest describes one image generation call.
type ImageRequest struct {
	Model         string
	Prompt        string
	ImageSize     string
	BatchSize     int
	GuidanceScale float64
}

// Client calls an OpenAI-compatible inference API (SiliconFlow in
// production). Calls are synchronous and single-shot; the only time bound
// is the HTTP client timeout.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient builds a client rooted at baseURL (e.g. https://api.siliconflow.cn/v1).
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultClientTimeout},
	}
}

type chatPayload struct {
	Model            string         `json:"model"`
	Messages         []Message      `json:"messages"`
	Stream           bool           `json:"stream"`
	MaxTokens        int            `json:"max_tokens"`
	Stop             []string       `json:"stop"`
	Temperature      float64        `json:"temperature"`
	TopP             float64        `json:"top_p"`
	TopK             int            `json:"top_k"`
	FrequencyPenalty float64        `json:"frequency_penalty"`
	N                int            `json:"n"`
	ResponseFormat   responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends the conversation and returns the first choice's content.
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	if req.MaxTokens <= 0 {
		req.MaxTokens = DefaultMaxTokens
	}
	if req.Temperature <= 0 {
		req.Temperature = DefaultTemperature
	}
	if req.TopP <= 0 {
		req.TopP = DefaultTopP
	}

	payload := chatPayload{
		Model:            req.Model,
		Messages:         req.Messages,
		Stream:           false,
		MaxTokens:        req.MaxTokens,
		Stop:             []string{"null"},
		Temperature:      req.Temperature,
		TopP:             req.TopP,
		TopK:             50,
		FrequencyPenalty: 0.5,
		N:                1,
		ResponseFormat:   responseFormat{Type: "text"},
	}

	body, err := c.post(ctx, "/chat/completions", payload)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

type imagePayload struct {
	Model         string  `json:"model"`
	Prompt        string  `json:"prompt"`
	BatchSize     int     `json:"batch_size"`
	GuidanceScale float64 `json:"guidance_scale"`
	ImageSize     string  `json:"image_size"`
}

type imageResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// GenerateImage sends the prompt and returns the generated image URLs.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) ([]string, error) {
	if req.Model == "" {
		req.Model = DefaultImageModel
	}
	if req.ImageSize == "" {
		req.ImageSize = DefaultImageSize
	}
	if req.BatchSize <= 0 {
		req.BatchSize = DefaultBatchSize
	}
	if req.GuidanceScale <= 0 {
		req.GuidanceScale = DefaultGuidance
	}

	payload := imagePayload{
		Model:         req.Model,
		Prompt:        req.Prompt,
		BatchSize:     req.BatchSize,
		GuidanceScale: req.GuidanceScale,
		ImageSize:     req.ImageSize,
	}

	body, err := c.post(ctx, "/images/generations", payload)
	if err != nil {
		return nil, err
	}

	var parsed imageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode image response: %w", err)
	}

	urls := make([]string, 0, len(parsed.Images))
	for _, img := range parsed.Images {
		urls = append(urls, img.URL)
	}
	return urls, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("inference API call failed", "path", path, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("inference API status %d", resp.StatusCode)
	}

	return body, nil
}
