// Package llm provides an optional model-based adjudicator for answers that
// none of the evidence sources could confirm. It is disabled unless a
// provider is configured; validation never depends on it.
package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"letterrush/internal/model"
)

const systemPrompt = "You judge word-game answers. Given a category and an answer, " +
	"reply with exactly YES if the answer is a real, commonly recognized member " +
	"of the category, or exactly NO otherwise. Reply with one word only."

// Adjudicator asks a chat model for a yes/no judgement on an answer. Any
// failure — unreachable API, timeout, unparsable reply — counts as no
// evidence, never as an error.
type Adjudicator struct {
	client *openai.Client
	cfg    model.LLMConfig
	log    *zap.Logger
}

// New creates an adjudicator from configuration. It returns an error when the
// provider is set but unusable; callers should then run without one.
func New(cfg model.LLMConfig, log *zap.Logger) (*Adjudicator, error) {
	if cfg.Provider != "openai" {
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm provider configured without api key")
	}
	if log == nil {
		log = zap.NewNop()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Adjudicator{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
		log:    log,
	}, nil
}

// Judge reports whether the model affirms the answer for the category. Only
// an unambiguous affirmative counts.
func (a *Adjudicator) Judge(ctx context.Context, category, answer string) bool {
	modelName := a.cfg.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Category: %s\nAnswer: %s", category, answer),
			},
		},
		MaxTokens:   4,
		Temperature: 0,
	})
	if err != nil {
		a.log.Debug("adjudicator call failed", zap.Error(err))
		return false
	}
	if len(resp.Choices) == 0 {
		return false
	}

	reply := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	return reply == "YES"
}
