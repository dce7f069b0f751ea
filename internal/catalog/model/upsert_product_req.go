package model

import "strings"

// UpsertProductReq writes a single product. This is the point-write path the
// batch endpoints replace for large imports; it stays for one-off edits.
type UpsertProductReq struct {
	SKU         string `json:"sku" validate:"required,min=1,max=64"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Brand       string `json:"brand" validate:"omitempty,max=100"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	Quantity    int64  `json:"quantity" validate:"gte=0"`
}

func (r *UpsertProductReq) Validate() error {
	r.SKU = strings.ToUpper(strings.TrimSpace(r.SKU))
	r.Name = strings.TrimSpace(r.Name)
	r.Brand = strings.TrimSpace(r.Brand)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	return nil
}
