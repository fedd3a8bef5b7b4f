package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/llm"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
)

// ImageTokener defines only the token methods needed by this handler.
type ImageTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ImageGenerator defines the interface that the inference client must implement.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req llm.ImageRequest) ([]string, error)
}

// GenerateImageRequest represents the JSON body for image generation
// swagger:model GenerateImageRequest
type GenerateImageRequest struct {
	// Text prompt
	// required: true
	// default: a lighthouse at dawn
	Prompt string `json:"prompt"`

	// Image model to use
	// default: stabilityai/stable-diffusion-3-5-large
	Model string `json:"model,omitempty"`

	// Output resolution
	// default: 1024x1024
	ImageSize string `json:"image_size,omitempty"`

	// Number of images to generate
	// default: 1
	BatchSize int `json:"batch_size,omitempty"`

	// Guidance scale
	// default: 7.0
	GuidanceScale float64 `json:"guidance_scale,omitempty"`
}

// GenerateImageResponse represents a successful image generation
// swagger:model GenerateImageResponse
type GenerateImageResponse struct {
	// URLs of the generated images
	Images []string `json:"images"`
}

// GenerateImageErrorResponse represents an error response for image generation
// swagger:model GenerateImageErrorResponse
type GenerateImageErrorResponse struct {
	// Error message
	// default: Prompt is required
	Error string `json:"error"`
}

// NewGenerateImageHandler returns an HTTP handler that generates images from
// a text prompt through the inference API.
// @Summary Generate images
// @Description Generates one or more images from a prompt and returns their URLs. URLs are served by the inference provider and expire.
// @Tags llm
// @Accept json
// @Produce json
// @Param generateImageRequest body handlers.GenerateImageRequest true "Generation parameters"
// @Success 200 {object} handlers.GenerateImageResponse "Generated image URLs"
// @Failure 400 {object} handlers.GenerateImageErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.GenerateImageErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.GenerateImageErrorResponse "Inference API failure"
// @Router /images [post]
// @Security BearerAuth
func NewGenerateImageHandler(
	client ImageGenerator,
	tokenGetter ImageTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		var req GenerateImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateImageErrorResponse{
				Error: "Prompt is required",
			})
			return
		}

		images, err := client.GenerateImage(r.Context(), llm.ImageRequest{
			Model:         req.Model,
			Prompt:        req.Prompt,
			ImageSize:     req.ImageSize,
			BatchSize:     req.BatchSize,
			GuidanceScale: req.GuidanceScale,
		})
		if err != nil {
			logger.Log.Errorw("image generation failed", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(GenerateImageErrorResponse{
				Error: "Inference API failure",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GenerateImageResponse{Images: images})
	}
}
