package ai

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const defaultTimeout = 60 * time.Second

// GeminiProvider implements Provider on top of Google's Gemini API. Responses
// are requested as JSON with a low temperature; callers still validate and
// sanitize everything that comes back.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiProvider creates a Gemini-backed provider. The model name falls
// back to a sensible default when empty.
func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   model,
		timeout: defaultTimeout,
	}, nil
}

// Complete sends a text prompt and returns the raw response text
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result, err := p.client.Models.GenerateContent(ctx,
		p.model,
		genai.Text(prompt),
		p.generateConfig(),
	)
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

// CompleteVision sends a text prompt plus one image and returns the raw
// response text
func (p *GeminiProvider) CompleteVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("image data is required")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}, genai.RoleUser)

	result, err := p.client.Models.GenerateContent(ctx,
		p.model,
		[]*genai.Content{content},
		p.generateConfig(),
	)
	if err != nil {
		return "", fmt.Errorf("gemini vision completion failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

func (p *GeminiProvider) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
	}
}
