package model

import "strings"

type ListProductsReq struct {
	Brand          string `query:"brand" validate:"omitempty,max=100"`
	NamePrefix     string `query:"name_prefix" validate:"omitempty,max=200"`
	IncludeDeleted bool   `query:"include_deleted"`
	Limit          int64  `query:"limit" validate:"gte=0,lte=500"`
	Offset         int64  `query:"offset" validate:"gte=0"`
}

func (r *ListProductsReq) Validate() error {
	r.Brand = strings.TrimSpace(r.Brand)
	r.NamePrefix = strings.TrimSpace(r.NamePrefix)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Limit == 0 {
		r.Limit = 50
	}

	return nil
}

func (r *ListProductsReq) ToFilter() ProductFilter {
	return ProductFilter{
		Brand:          r.Brand,
		NamePrefix:     r.NamePrefix,
		IncludeDeleted: r.IncludeDeleted,
		Limit:          r.Limit,
		Offset:         r.Offset,
	}
}
