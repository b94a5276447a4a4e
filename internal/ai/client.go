package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client encapsula o Gemini em modo structured output:
// toda resposta é JSON e desserializa direto no tipo de saída.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ai: gemini api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("ai: failed to create gemini client: %w", err)
	}

	return &Client{
		genai: client,
		model: model,
	}, nil
}

func (c *Client) GenerateJSON(
	ctx context.Context,
	system string,
	prompt string,
	out any,
) error {

	model := c.genai.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	if system != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("ai: gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return errors.New("ai: gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return errors.New("ai: gemini returned empty content")
	}

	var raw strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	if err := json.Unmarshal([]byte(raw.String()), out); err != nil {
		return fmt.Errorf("ai: invalid json from gemini: %w", err)
	}
	return nil
}
