package models

import "github.com/shopspring/decimal"

// ExecutiveBrief is the two-field advisory produced for the dashboard.
type ExecutiveBrief struct {
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// GLCodeRequest defines the body of a GL code suggestion request.
type GLCodeRequest struct {
	StyleName string          `json:"styleName"`
	Category  string          `json:"category"`
	Cost      decimal.Decimal `json:"cost"`
}

// GLCodeSuggestion is returned to the receiving form.
type GLCodeSuggestion struct {
	GLCode  string `json:"glCode"`
	Outcome string `json:"outcome"`
}

// BriefResponse wraps a brief with how it was produced.
type BriefResponse struct {
	ExecutiveBrief
	Outcome string `json:"outcome"`
}
