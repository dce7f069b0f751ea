package model

import "time"

// Product is the catalog document stored in MongoDB. SKU is the business
// identifier; _id stays driver-managed.
type Product struct {
	ID          string `bson:"_id,omitempty" json:"-"`
	SKU         string `bson:"sku" json:"sku"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Brand       string `bson:"brand,omitempty" json:"brand,omitempty"`
	// PriceCents avoids float rounding in the store
	PriceCents int64 `bson:"price_cents" json:"price_cents"`
	Quantity   int64 `bson:"quantity" json:"quantity"`
	Deleted    bool  `bson:"deleted" json:"deleted"`

	// Audit Fields
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`
}

// Post is one published article, collapsed from however many draft
// revisions share its slug.
type Post struct {
	ID       string    `bson:"_id,omitempty" json:"-"`
	Slug     string    `bson:"slug" json:"slug"`
	Title    string    `bson:"title" json:"title"`
	Date     time.Time `bson:"date" json:"date"`
	Tags     []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Author   string    `bson:"author,omitempty" json:"author,omitempty"`
	Draft    bool      `bson:"draft" json:"draft"`
	Deleted  bool      `bson:"deleted" json:"deleted"`
	Revision int       `bson:"revision" json:"revision"`

	SourcePath   string `bson:"source_path,omitempty" json:"source_path,omitempty"`
	BodyMarkdown string `bson:"body_markdown" json:"body_markdown"`
	BodyHTML     string `bson:"body_html" json:"body_html"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`
}

type ProductFilter struct {
	Brand          string
	NamePrefix     string
	IncludeDeleted bool
	Limit          int64
	Offset         int64
}

type PostFilter struct {
	Tag            string
	IncludeDrafts  bool
	IncludeDeleted bool
	Limit          int64
	Offset         int64
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}
