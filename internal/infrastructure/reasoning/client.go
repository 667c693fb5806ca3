// Package reasoning is the HTTP client for the OpenAI-compatible reasoning
// engine behind the counsellor.
package reasoning

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"gradpath-server/internal/config"
	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/domain/counselling"
	"gradpath-server/internal/utils/httpclients"
	"gradpath-server/internal/utils/platformerrors"
)

// Client calls the chat-completions endpoint of the configured engine. One
// request per turn, a hard timeout, and no retries: when the engine cannot
// answer in time the counselling layer falls back deterministically.
type Client struct {
	client      *resty.Client
	baseURL     string
	apiKey      string
	model       string
	timeout     time.Duration
	maxTokens   int
	temperature float32
}

var _ counselling.Gateway = (*Client)(nil)

// NewClient constructs a Client from service configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		client:      httpclients.NewClient("reasoning-engine"),
		baseURL:     strings.TrimRight(strings.TrimSpace(cfg.ReasoningBaseURL), "/"),
		apiKey:      cfg.ReasoningAPIKey,
		model:       cfg.ReasoningModel,
		timeout:     cfg.ReasoningTimeout,
		maxTokens:   cfg.ReasoningMaxTokens,
		temperature: cfg.ReasoningTemperature,
	}
}

// Invoke sends the built context and returns the engine's raw text output.
func (c *Client) Invoke(ctx context.Context, bctx counselling.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    buildMessages(bctx),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	var respBody openai.ChatCompletionResponse
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&respBody)
	if c.apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := req.Post(c.baseURL + "/chat/completions")
	if err != nil {
		return "", c.classifyTransportError(ctx, err)
	}
	if resp.IsError() {
		return "", c.classifyStatusError(ctx, resp.StatusCode())
	}
	if len(respBody.Choices) == 0 {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"reasoning engine returned no choices", nil, "d84c17f0-6b29-4e53-a1d8-90f63c25e7b4")
	}
	return respBody.Choices[0].Message.Content, nil
}

func (c *Client) classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeTimeout,
			"reasoning engine call timed out", err, "4f92a6d3-1e80-4c57-b2f4-68d05c31e9a7")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
		"reasoning engine call failed", err, "b07e53c9-2d84-4f16-a9c0-31e86d50f2a4")
}

func (c *Client) classifyStatusError(ctx context.Context, status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeRateLimited,
			"reasoning engine rate limited the request", nil, "69d41b82-7f35-4a60-93c8-e52d07a14f6b")
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeUnauthorized,
			"reasoning engine rejected the credentials", nil, "c25f80d7-4a93-4e18-b6d2-07f41c38e5a9")
	default:
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("reasoning engine returned status %d", status), nil, "f13a68e0-9c27-4b54-82d6-50e93d71c4b8")
	}
}

func buildMessages(bctx counselling.Context) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(bctx.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: RenderSystemPrompt(bctx),
	})
	for _, msg := range bctx.History {
		role := openai.ChatMessageRoleUser
		if msg.Role == conversation.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: bctx.UserMessage,
	})
	return messages
}
