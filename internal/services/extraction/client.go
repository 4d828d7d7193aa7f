package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/videochef/recipe-api/internal/models"
	apperrors "github.com/videochef/recipe-api/pkg/errors"
)

const (
	anthropicVersion   = "2023-06-01"
	maxErrorBodyLength = 200
)

// Client sends transcripts to an Anthropic-style messages API and forces
// the model to answer through the save_recipe tool, so the response is a
// schema-shaped object rather than free text.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
}

// Config holds configuration for the extraction client
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// NewClient creates a new structured-extraction client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
	}
}

var _ Extractor = (*Client)(nil)

// messagesRequest is the request body for the messages endpoint
type messagesRequest struct {
	Model      string         `json:"model"`
	MaxTokens  int            `json:"max_tokens"`
	System     string         `json:"system"`
	Messages   []message      `json:"messages"`
	Tools      []tool         `json:"tools"`
	ToolChoice map[string]any `json:"tool_choice"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// messagesResponse is the subset of the response we care about
type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// Extract sends the transcript to the model and validates the returned
// structured payload. Missing required fields fail closed rather than
// persisting a partial record silently.
func (c *Client) Extract(ctx context.Context, transcript string) (*Result, error) {
	if c.apiKey == "" {
		return nil, apperrors.ConfigRequiredError("extraction.api_key")
	}

	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    systemPrompt,
		Messages: []message{
			{Role: "user", Content: "Extract a structured recipe from this video transcript:\n\n" + transcript},
		},
		Tools: []tool{
			{
				Name:        saveRecipeToolName,
				Description: "Save the extracted recipe with all structured fields",
				InputSchema: saveRecipeSchema,
			},
		},
		ToolChoice: map[string]any{"type": "tool", "name": saveRecipeToolName},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProvider, "extraction backend unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProvider, "reading extraction response")
	}

	if resp.StatusCode != http.StatusOK {
		message := string(body)
		if len(message) > maxErrorBodyLength {
			message = message[:maxErrorBodyLength]
		}
		return nil, apperrors.ProviderError("extraction", resp.StatusCode, message)
	}

	var decoded messagesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProvider, "decoding extraction response")
	}

	for _, block := range decoded.Content {
		if block.Type == "tool_use" && block.Name == saveRecipeToolName {
			return parseResult(block.Input)
		}
	}

	return nil, apperrors.New(apperrors.ErrCodeExtractionFailed,
		"model did not return structured recipe data")
}

// parseResult validates and coerces the tool input into a Result
func parseResult(input json.RawMessage) (*Result, error) {
	// Presence check on the raw keys: a missing required field and a
	// zero-valued one are different schema violations.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(input, &keys); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExtractionFailed, "malformed tool input")
	}
	for _, field := range requiredFields {
		if _, ok := keys[field]; !ok {
			log.Printf("[WARN] Extraction payload missing required field %q", field)
			return nil, apperrors.Newf(apperrors.ErrCodeExtractionFailed,
				"extraction payload missing required field %q", field)
		}
	}

	var result Result
	if err := json.Unmarshal(input, &result); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExtractionFailed, "malformed tool input")
	}

	if result.Title == "" || result.SourceLanguage == "" {
		return nil, apperrors.New(apperrors.ErrCodeExtractionFailed,
			"extraction payload has empty required fields")
	}

	// Ingredients and instructions are never omitted, only empty
	if result.Ingredients == nil {
		result.Ingredients = []models.Ingredient{}
	}
	if result.Instructions == nil {
		result.Instructions = []string{}
	}
	if result.Tags == nil {
		result.Tags = []string{}
	}

	return &result, nil
}
