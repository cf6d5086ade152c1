package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerator calls the Gemini API through the generative-ai-go SDK.
type GeminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator opens a Gemini client authenticated with apiKey.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client}, nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Generate sends one prompt and returns the text of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	model := g.client.GenerativeModel(req.Model)
	if req.Schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = toGenaiSchema(req.Schema)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("error generating content: %w", err)
	}
	return responseText(resp)
}

func toGenaiSchema(s *ResponseSchema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	required := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = &genai.Schema{Type: genaiType(f.Type)}
		required = append(required, f.Name)
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}

func genaiType(t FieldType) genai.Type {
	switch t {
	case FieldNumber:
		return genai.TypeNumber
	case FieldInteger:
		return genai.TypeInteger
	case FieldBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content received from AI")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", errEmptyResponse
	}
	return sb.String(), nil
}
