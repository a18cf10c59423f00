package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// CompletionClient issues one chat-completion call and returns the raw text
// of the first choice. Implementations must not retry.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ClientConfig holds everything an HTTPCompletionClient needs. It is built by
// the config package (provider selection happens there) and injected, so tests
// can point the client at a stub server.
type ClientConfig struct {
	APIKey      string
	APIURL      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Message represents one message in the chat payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents the chat-completions request body.
type Request struct {
	Model            string            `json:"model"`
	Messages         []Message         `json:"messages"`
	ResponseFormat   map[string]string `json:"response_format"`
	Temperature      float64           `json:"temperature"`
	TopP             float64           `json:"top_p"`
	FrequencyPenalty float64           `json:"frequency_penalty"`
	PresencePenalty  float64           `json:"presence_penalty"`
	MaxTokens        int               `json:"max_tokens,omitempty"`
}

// HTTPCompletionClient talks to an OpenAI-compatible chat-completions
// endpoint. The same client serves both supported providers; only the URL,
// model and key differ.
type HTTPCompletionClient struct {
	cfg    ClientConfig
	client *http.Client
}

// NewHTTPCompletionClient creates a new HTTPCompletionClient instance. A nil
// httpClient falls back to http.DefaultClient; callers needing timeouts
// supply their own.
func NewHTTPCompletionClient(cfg ClientConfig, httpClient *http.Client) *HTTPCompletionClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPCompletionClient{cfg: cfg, client: httpClient}
}

// Complete sends one request and returns the raw content of the first choice.
// All failures surface as *TransportError.
func (c *HTTPCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := Request{
		Model: c.cfg.Model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature:      c.cfg.Temperature,
		TopP:             0.9,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
		MaxTokens:        c.cfg.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", string(body))}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(result.Choices) == 0 {
		return "", &TransportError{Err: fmt.Errorf("no choices in API response")}
	}

	return result.Choices[0].Message.Content, nil
}
