package model

import "strings"

// BulkDeleteProductsReq soft-deletes a set of products by SKU.
type BulkDeleteProductsReq struct {
	SKUs []string `json:"skus" validate:"max=1000,dive,max=64"`
}

func (r *BulkDeleteProductsReq) Validate() error {
	// TrimSpace, uppercase and remove duplicates
	seen := make(map[string]bool)
	unique := make([]string, 0, len(r.SKUs))
	for _, sku := range r.SKUs {
		trimmed := strings.ToUpper(strings.TrimSpace(sku))
		if trimmed != "" && !seen[trimmed] {
			seen[trimmed] = true
			unique = append(unique, trimmed)
		}
	}
	r.SKUs = unique

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	return nil
}
