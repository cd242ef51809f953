// Package adapters provides optional collaborators for the router engine.
// Nothing here is on the classification hot path: the chat fallback is only
// consulted for tasks the lexicons carry no signal for, and only when the
// caller wires it in explicitly.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	router "github.com/FrenchMajesty/agent-router"
	"github.com/FrenchMajesty/agent-router/internal/retry"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"
const defaultModel = "llama-3.3-70b-versatile"

const systemPrompt = `You route browser tasks to a specialized agent. Given a task, answer with exactly one of these words and nothing else:

research, navigation, shopping, communication, automation, analysis`

// ChatFallback implements router.FallbackClassifier against an
// OpenAI-compatible chat-completions API.
type ChatFallback struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewChatFallback creates a fallback classifier. An empty apiKey falls back
// to the GROQ_API_KEY environment variable; empty model and baseURL use the
// Groq defaults.
func NewChatFallback(apiKey, model, baseURL string) (*ChatFallback, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key provided and GROQ_API_KEY is not set")
	}
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &ChatFallback{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		retryCfg:   retry.DefaultConfig(),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ClassifyTask asks the chat API which agent kind should own the task.
func (c *ChatFallback) ClassifyTask(ctx context.Context, task string) (router.AgentKind, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: task},
		},
		MaxTokens: 10,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	result, err := retry.Do(ctx, "chat-fallback", c.retryCfg, isRetryable, func(attempt int) (any, int, error) {
		return c.doRequest(ctx, body)
	})
	if err != nil {
		return "", err
	}

	return parseKind(result.(string))
}

// doRequest performs one chat-completions call and returns the raw label.
func (c *ChatFallback) doRequest(ctx context.Context, body []byte) (any, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("chat API returned status %d: %s", resp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to parse chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, resp.StatusCode, fmt.Errorf("chat API returned no choices")
	}

	return parsed.Choices[0].Message.Content, resp.StatusCode, nil
}

// isRetryable retries network errors, rate limits, and server errors.
func isRetryable(err error, statusCode int) bool {
	if statusCode == 0 {
		return true
	}
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// parseKind normalizes the model's answer into an AgentKind.
func parseKind(label string) (router.AgentKind, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.Trim(label, ".\"'`")
	kind := router.AgentKind(label)
	if !kind.Valid() {
		return "", fmt.Errorf("chat API returned unknown agent kind %q", label)
	}
	return kind, nil
}
