package draft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/fkhayef/quicksplit/internal/metrics"
)

// OpenAIGenerator implements Generator against any OpenAI-compatible chat
// completions endpoint that supports JSON-schema structured output.
type OpenAIGenerator struct {
	client *openai.Client
	models map[Tier]string
	logger *slog.Logger
}

// NewOpenAIGenerator creates a generator. models maps each tier to a model name.
func NewOpenAIGenerator(baseURL, apiKey string, models map[Tier]string, logger *slog.Logger) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		models: models,
		logger: logger,
	}
}

// Generate asks the tier's model for a draft and validates the answer.
func (g *OpenAIGenerator) Generate(ctx context.Context, text string, tier Tier) (*Draft, error) {
	model, ok := g.models[tier]
	if !ok {
		return nil, &GenerationError{Tier: tier, Err: fmt.Errorf("no model configured")}
	}

	start := time.Now()
	defer func() {
		metrics.DraftGenerationSeconds.WithLabelValues(string(tier)).Observe(time.Since(start).Seconds())
	}()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: Grounding},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "expense_draft",
				Schema: &OutputSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, &GenerationError{Tier: tier, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &GenerationError{Tier: tier, Err: errors.New("empty response")}
	}

	content := resp.Choices[0].Message.Content
	g.logger.Debug("Draft generated", "tier", tier, "model", model, "duration_ms", time.Since(start).Milliseconds())

	d, err := Parse([]byte(content))
	if err != nil {
		return nil, &GenerationError{Tier: tier, Err: err}
	}
	return d, nil
}

// OutputSchema is the JSON schema both tiers must answer with.
var OutputSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"expense": {
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"description": {Type: jsonschema.String, Description: "What was bought, without names or dates"},
				"amount":      {Type: jsonschema.Number, Description: "Total amount paid"},
			},
			Required:             []string{"description", "amount"},
			AdditionalProperties: false,
		},
		"members": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"name":  {Type: jsonschema.String, Description: `Member name as written, or "USER" for the author`},
					"role":  {Type: jsonschema.String, Enum: []string{string(RolePayer), string(RoleParticipant)}},
					"split": {Type: jsonschema.Number, Description: "Fraction of the total between 0 and 1"},
				},
				Required:             []string{"name", "role", "split"},
				AdditionalProperties: false,
			},
		},
	},
	Required:             []string{"expense", "members"},
	AdditionalProperties: false,
}
