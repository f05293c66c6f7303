package completion

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/31d4r/Raven/internal/logger"
)

type implOpenAI struct {
	client openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Completer backed by the Chat Completions API.
// baseURL is optional and points the client at a compatible server.
func NewOpenAI(apiKey, model, baseURL string, log logger.Logger) Completer {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &implOpenAI{
		client: openai.NewClient(opts...),
		model:  model,
		logger: log,
	}
}

func (o *implOpenAI) Respond(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}

	o.logger.Debug(ctx, "OpenAI usage: %d prompt / %d completion tokens",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}
