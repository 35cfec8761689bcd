package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/studyforge-backend/internal/generation"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/utils"
)

// Client is the completion-service boundary. One attempt per request; retry
// and backoff are deliberately absent.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient builds the client from the environment. A missing credential is
// not a construction error: Complete reports it per request so every
// generation operation surfaces the same "not configured" failure.
func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	scoped := log.With("service", "OpenAIClient")

	baseURL := strings.TrimRight(utils.GetEnv("OPENAI_BASE_URL", "https://api.openai.com", scoped), "/")
	model := utils.GetEnv("OPENAI_MODEL", "gpt-4o-mini", scoped)
	timeoutSec := utils.GetEnvAsInt("OPENAI_TIMEOUT_SECONDS", 180, scoped)

	return &client{
		log:        scoped,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(utils.GetEnv("OPENAI_API_KEY", "", nil)),
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *client) Complete(ctx context.Context, prompt string) (string, error) {
	const op = "OpenAIClient.Complete"

	if c.apiKey == "" {
		return "", generation.NewError(generation.CodeConfiguration, op,
			"completion service not configured: set OPENAI_API_KEY", nil)
	}

	body := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", generation.Wrap(generation.CodeProvider, op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return "", generation.Wrap(generation.CodeProvider, op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("completion request failed", "model", c.model, "error", err.Error())
		return "", generation.Wrap(generation.CodeProvider, op, err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", generation.Wrap(generation.CodeProvider, op, readErr)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.log.Warn("completion credential rejected", "status", resp.StatusCode)
		return "", generation.NewError(generation.CodeConfiguration, op,
			fmt.Sprintf("completion service rejected the configured credential (%s)", maskKey(c.apiKey)), nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg := providerMessage(raw)
		c.log.Warn("completion request rejected", "status", resp.StatusCode, "provider_message", msg)
		return "", generation.NewError(generation.CodeProvider, op,
			fmt.Sprintf("completion service error (%d): %s", resp.StatusCode, msg), nil)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", generation.Wrap(generation.CodeProvider, op, fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return "", generation.NewError(generation.CodeProvider, op,
			"completion service returned no choices", nil)
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// providerMessage pulls the provider's own error text out of the body so it
// survives into the provider error.
func providerMessage(raw []byte) string {
	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 300 {
		msg = msg[:300]
	}
	if msg == "" {
		msg = "no error detail"
	}
	return msg
}

// maskKey keeps just enough of the credential to recognize which key is
// configured.
func maskKey(key string) string {
	if len(key) <= 5 {
		return "****"
	}
	return key[:5] + "****"
}
