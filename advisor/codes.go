package advisor

// GLCode is a ledger code with its chart-of-accounts label.
type GLCode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// KnownGLCodes is the closed set of codes the model may suggest.
var KnownGLCodes = []GLCode{
	{Code: "5001", Label: "COGS - Apparel"},
	{Code: "5002", Label: "COGS - Footwear"},
	{Code: "5003", Label: "COGS - Accessories"},
	{Code: "6000", Label: "Operational Expense"},
}

const (
	// GenericGLCode is used when no suggestion can be trusted.
	GenericGLCode = "5000-GENERIC"
	// FallbackGLCode is used when the AI call itself failed.
	FallbackGLCode = "5000"
)

// IsKnownGLCode reports whether code is in the closed set.
func IsKnownGLCode(code string) bool {
	for _, c := range KnownGLCodes {
		if c.Code == code {
			return true
		}
	}
	return false
}

// IsAcceptedGLCode also admits the two fallback codes.
func IsAcceptedGLCode(code string) bool {
	return IsKnownGLCode(code) || code == GenericGLCode || code == FallbackGLCode
}
