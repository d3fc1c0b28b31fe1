package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no prompt is loaded from Langfuse or disk.
const DefaultSystemPrompt = `You are a non-medical nutrition tracking assistant.

You receive an estimate of a single user's daily energy expenditure (TDEE), derived from their logged food intake and the trend of their body weight, together with a data quality report. You must base your conclusions only on the provided data.

Your goals:
- Explain the current expenditure estimate and how confident it is, in plain language.
- Describe the weight trend and recent intake without judging the user.
- Point out logging habits that weaken the estimate (missed days, weekend gaps, sparse weigh-ins).
- Relate the numbers to the user's goal (cut, gain, maintenance or recomp).

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT recommend specific diets, supplements or drugs.
- Never treat a gap in logging as a day of fasting.
- If the methodology is "initial" or confidence is low, say that the estimate is still settling.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing expenditure, weight trend and intake.",
  "observations": [
    "3-6 bullet points about the estimate, the weight trend, intake and logging patterns."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about logging consistency if data quality is not high."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's energy data.

- "goal" is the user's body composition goal.
- "estimate" is the expenditure estimate: current_tdee in kcal/day, confidence, the smoothed trend_weight, the weekly change rate in percent of body weight, methodology ("initial" means profile-based, "adherence_neutral" means derived from intake and weight change) and the energy component breakdown.
- "data_quality" scores logging density, weighing frequency and weight stability, with detected patterns.
- "window" has 7 and 14 day weight changes and calorie averages.
- "target" is the current calorie and macro target, if any.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating energy insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty. An empty systemPrompt uses DefaultSystemPrompt.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateInsights calls OpenAI to generate energy insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	userPrompt, err := buildUserPrompt(insightsCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseOutput(resp.Choices[0].Message.Content)
}

func buildUserPrompt(insightsCtx *domain.InsightsContext) (string, error) {
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(userPromptTemplate, string(contextJSON)), nil
}

// parseOutput decodes the model's JSON answer. A summary is required.
func parseOutput(content string) (*domain.LLMInsightsOutput, error) {
	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if strings.TrimSpace(output.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	if output.Observations == nil {
		output.Observations = []string{}
	}
	if output.Guidance == nil {
		output.Guidance = []string{}
	}
	return &output, nil
}
