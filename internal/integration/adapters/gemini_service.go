// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
)

// GeminiConfig configures the Gemini insight client.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// GeminiService implements the adapter.InsightService using Google Gemini.
type GeminiService struct {
	apiKey      string
	modelName   string
	temperature float32
	timeout     time.Duration
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(cfg GeminiConfig) *GeminiService {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiService{
		apiKey:      cfg.APIKey,
		modelName:   model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Analyze sends the purchase digest to Gemini and parses the structured reply.
func (s *GeminiService) Analyze(ctx context.Context, request *adapter.InsightRequest) (*entity.Insight, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(s.temperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = insightSchema()

	prompt, err := buildInsightPrompt(request)
	if err != nil {
		return nil, err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	insight, err := parseInsightResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return insight, nil
}

func insightSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString},
			"trend":   {Type: genai.TypeString},
			"recommendations": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"summary", "trend", "recommendations"},
	}
}

func buildInsightPrompt(request *adapter.InsightRequest) (string, error) {
	data, err := json.Marshal(request.Purchases)
	if err != nil {
		return "", fmt.Errorf("failed to encode purchases: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Analyze the following prepaid electricity purchase data:\n")
	sb.Write(data)
	sb.WriteString("\n\nNote: 'totalCost' is the sum of price, vat, and fee.\n")
	fmt.Fprintf(&sb, "The currency symbol used is '%s'.\n\n", request.Currency)
	sb.WriteString(`Provide a structured JSON response containing:
1. "summary": A concise summary of spending and consumption habits (max 2 sentences).
2. "trend": Analysis of cost per unit (effective rate) and usage frequency over time (increasing/decreasing/stable).
3. "recommendations": An array of 3 actionable tips to save money or optimize purchasing based on this specific data pattern.
`)
	return sb.String(), nil
}

// geminiInsight represents the raw response from Gemini.
type geminiInsight struct {
	Summary         string   `json:"summary"`
	Trend           string   `json:"trend"`
	Recommendations []string `json:"recommendations"`
}

func parseInsightResponse(resp *genai.GenerateContentResponse) (*entity.Insight, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	return decodeInsight(textContent)
}

func decodeInsight(textContent string) (*entity.Insight, error) {
	// Strip markdown code fences if the model added them anyway.
	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiInsight
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if raw.Recommendations == nil {
		raw.Recommendations = []string{}
	}

	return &entity.Insight{
		Summary:         raw.Summary,
		Trend:           raw.Trend,
		Recommendations: raw.Recommendations,
	}, nil
}

// Ensure GeminiService implements adapter.InsightService.
var _ adapter.InsightService = (*GeminiService)(nil)
