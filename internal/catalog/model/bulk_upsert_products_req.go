package model

import "strings"

// ProductItem is one entry in a bulk upsert request.
type ProductItem struct {
	SKU         string `json:"sku" validate:"required,min=1,max=64"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Brand       string `json:"brand" validate:"omitempty,max=100"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	Quantity    int64  `json:"quantity" validate:"gte=0"`
}

// An empty or absent Items list is not a validation error: bulk writes treat
// it as a successful no-op downstream.
type BulkUpsertProductsReq struct {
	Items []ProductItem `json:"items" validate:"max=1000,dive"`
}

func (r *BulkUpsertProductsReq) Validate() error {
	for i := range r.Items {
		r.Items[i].SKU = strings.ToUpper(strings.TrimSpace(r.Items[i].SKU))
		r.Items[i].Name = strings.TrimSpace(r.Items[i].Name)
		r.Items[i].Brand = strings.TrimSpace(r.Items[i].Brand)
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	return nil
}

// Dedupe collapses duplicate SKUs last-wins. The write is unordered, so two
// operations on the same key in one batch would race on the server side.
func (r *BulkUpsertProductsReq) Dedupe() []ProductItem {
	seen := make(map[string]int, len(r.Items))
	out := make([]ProductItem, 0, len(r.Items))
	for _, item := range r.Items {
		if idx, ok := seen[item.SKU]; ok {
			out[idx] = item
			continue
		}
		seen[item.SKU] = len(out)
		out = append(out, item)
	}
	return out
}
