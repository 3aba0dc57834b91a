package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"sitegen_server/internal/types"
)

// DefaultTemperature is used when Options leaves Temperature unset.
const DefaultTemperature float32 = 0.7

// PlanRequester turns a validated build request into a site plan.
type PlanRequester interface {
	RequestSitePlan(ctx context.Context, req types.BuildRequest) (*types.SitePlan, error)
}

// chatCompleter is the part of *openai.Client the generator calls.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options configures NewGenerator.
type Options struct {
	APIKey      string
	Model       string
	BaseURL     string // optional, for OpenAI-compatible gateways
	Temperature *float32 // nil means DefaultTemperature; 0 is honored
}

// Generator handles interactions with the AI service.
type Generator struct {
	client      chatCompleter
	model       string
	temperature float32
	configured  bool
	log         *zap.Logger
}

var _ PlanRequester = (*Generator)(nil)

// NewGenerator always succeeds. Without an API key every request fails
// with a GenerationError instead.
func NewGenerator(opts Options, log *zap.Logger) *Generator {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return newGenerator(openai.NewClientWithConfig(cfg), opts, log)
}

func newGenerator(client chatCompleter, opts Options, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	model := opts.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	temp := DefaultTemperature
	if opts.Temperature != nil {
		temp = *opts.Temperature
	}
	return &Generator{
		client:      client,
		model:       model,
		temperature: temp,
		configured:  opts.APIKey != "",
		log:         log.Named("ai"),
	}
}

// Model reports the model name requests are sent with.
func (g *Generator) Model() string { return g.model }
