// Package advisor builds AI prompts from retail data and turns model replies
// into dashboard-ready values. Its calls never fail: every path ends in a
// value of the right shape, falling back to fixed text when the model is
// unavailable.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"retaildesk/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 15 * time.Second
)

// Fixed briefs returned when the model cannot be used.
var (
	UnconfiguredBrief = models.ExecutiveBrief{
		Summary:        "AI service unavailable. Please configure API Key.",
		Recommendation: "Manual review required.",
	}
	FallbackBrief = models.ExecutiveBrief{
		Summary:        "Unable to generate real-time analysis due to service interruption.",
		Recommendation: "Proceed with standard restocking protocols based on historical averages.",
	}
)

var errEmptyResponse = errors.New("no response from AI")

// Outcome tells how an advisory value was produced.
type Outcome string

const (
	OutcomeSucceeded    Outcome = "succeeded"
	OutcomeFailed       Outcome = "failed"
	OutcomeUnconfigured Outcome = "unconfigured"
	// OutcomeRejected means the model answered outside the allowed values.
	OutcomeRejected Outcome = "rejected"
)

// GenerateRequest is a single text-generation round trip.
type GenerateRequest struct {
	Model  string
	Prompt string
	Schema *ResponseSchema
}

// Generator sends a prompt to a hosted model and returns the raw text reply.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Config holds the advisor settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Advisor produces executive briefs and GL code suggestions.
type Advisor struct {
	cfg Config
	gen Generator
	log *zap.Logger
}

// New creates an Advisor. A nil generator or empty API key leaves it unconfigured.
func New(cfg Config, gen Generator, log *zap.Logger) *Advisor {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Advisor{cfg: cfg, gen: gen, log: log.Named("advisor")}
}

// Configured reports whether calls will reach the model.
func (a *Advisor) Configured() bool {
	return a.cfg.APIKey != "" && a.gen != nil
}

// ExecutiveBrief summarizes recent sales and stock alerts.
func (a *Advisor) ExecutiveBrief(ctx context.Context, sales []models.SalesMetric, lowStock []models.InventoryItem) models.ExecutiveBrief {
	brief, _ := a.Brief(ctx, sales, lowStock)
	return brief
}

// Brief is ExecutiveBrief that also reports the outcome.
func (a *Advisor) Brief(ctx context.Context, sales []models.SalesMetric, lowStock []models.InventoryItem) (models.ExecutiveBrief, Outcome) {
	if !a.Configured() {
		a.log.Warn("API key missing for Gemini service")
		return UnconfiguredBrief, OutcomeUnconfigured
	}

	prompt := BuildBriefPrompt(sales, lowStock)
	text, err := a.generate(ctx, prompt.Text, prompt.Schema)
	if err != nil {
		a.log.Error("executive brief generation failed", zap.Error(err))
		return FallbackBrief, OutcomeFailed
	}

	brief, err := parseBrief(text)
	if err != nil {
		a.log.Error("executive brief parse failed", zap.Error(err), zap.String("raw", text))
		return FallbackBrief, OutcomeFailed
	}
	return brief, OutcomeSucceeded
}

// SuggestGLCode proposes a ledger code for a purchased item.
func (a *Advisor) SuggestGLCode(ctx context.Context, productName string, category models.Category, cost decimal.Decimal) string {
	code, _ := a.GLCode(ctx, productName, category, cost)
	return code
}

// GLCode is SuggestGLCode that also reports the outcome.
func (a *Advisor) GLCode(ctx context.Context, productName string, category models.Category, cost decimal.Decimal) (string, Outcome) {
	if !a.Configured() {
		a.log.Warn("API key missing for Gemini service", zap.String("product", productName))
		return GenericGLCode, OutcomeUnconfigured
	}

	text, err := a.generate(ctx, BuildGLCodePrompt(productName, category, cost), nil)
	if err != nil {
		a.log.Warn("GL code suggestion failed", zap.Error(err), zap.String("product", productName))
		return FallbackGLCode, OutcomeFailed
	}

	code := strings.TrimSpace(text)
	if !IsKnownGLCode(code) {
		a.log.Warn("GL code outside known set", zap.String("code", code), zap.String("product", productName))
		return GenericGLCode, OutcomeRejected
	}
	return code, OutcomeSucceeded
}

func (a *Advisor) generate(ctx context.Context, prompt string, schema *ResponseSchema) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	start := time.Now()
	text, err := a.gen.Generate(ctx, GenerateRequest{Model: a.cfg.Model, Prompt: prompt, Schema: schema})
	a.log.Debug("generate round trip", zap.String("model", a.cfg.Model), zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

func parseBrief(text string) (models.ExecutiveBrief, error) {
	raw := extractJSON(text)
	if raw == "" {
		return models.ExecutiveBrief{}, fmt.Errorf("no JSON object in response")
	}

	var brief models.ExecutiveBrief
	if err := json.Unmarshal([]byte(raw), &brief); err != nil {
		return models.ExecutiveBrief{}, fmt.Errorf("failed to parse AI brief: %w", err)
	}
	if brief.Summary == "" && brief.Recommendation == "" {
		return models.ExecutiveBrief{}, fmt.Errorf("AI brief has no fields")
	}
	return brief, nil
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}
