package utils

import "strings"

// SKUPrefix is the brand prefix every SKU carries.
const SKUPrefix = "LX-"

// NormalizeSKU upper-cases a SKU and adds the brand prefix when the
// receiving form sent only the suffix (e.g. "rn-005" -> "LX-RN-005").
func NormalizeSKU(sku string) string {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" || strings.HasPrefix(sku, SKUPrefix) {
		return sku
	}
	return SKUPrefix + sku
}
