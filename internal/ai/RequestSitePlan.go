package ai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"sitegen_server/internal/ai/prompts"
	"sitegen_server/internal/metrics"
	"sitegen_server/internal/schema"
	"sitegen_server/internal/types"
)

// RequestSitePlan makes a single chat completion call and validates the reply
// as a site plan. There is no retry.
func (g *Generator) RequestSitePlan(ctx context.Context, req types.BuildRequest) (*types.SitePlan, error) {
	if !g.configured {
		return nil, &GenerationError{Message: MsgNotConfigured, Err: ErrNotConfigured}
	}

	userPrompt, err := prompts.SitePlanUserPrompt(req)
	if err != nil {
		return nil, malformed(err)
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.SitePlanSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: wireTemperature(g.temperature),
	})
	metrics.ObserveAIRequest(time.Since(start))

	if err != nil {
		return nil, malformed(fmt.Errorf("openai chat completion failed: %w", err))
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		g.log.Warn("empty completion", zap.Any("usage", resp.Usage))
		return nil, malformed(errors.New("openai returned empty response"))
	}

	llmOutput := resp.Choices[0].Message.Content
	g.log.Debug("site plan raw output", zap.String("output", llmOutput))

	plan, err := schema.ValidateSitePlan([]byte(stripFences(llmOutput)))
	if err != nil {
		g.log.Warn("site plan rejected", zap.Error(err))
		return nil, malformed(err)
	}

	g.log.Info("site plan received",
		zap.String("title", plan.Meta.Title),
		zap.Int("sections", len(plan.Sections)),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return plan, nil
}

// stripFences removes a markdown code fence some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// wireTemperature keeps an explicit zero on the wire. go-openai omits a zero
// temperature, which the API reads as its default of 1.
func wireTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
