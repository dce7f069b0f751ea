package model

import (
	"strings"
	"time"
)

// Operation names recorded in the log
const (
	OpBulkUpsertProducts = "bulk_upsert_products"
	OpBulkDeleteProducts = "bulk_delete_products"
	OpUpsertProduct      = "upsert_product"
	OpSyncPosts          = "sync_posts"
)

// OperationLog is an append-only audit record of one write operation.
type OperationLog struct {
	ID        string    `bson:"_id,omitempty" json:"-"`
	Operation string    `bson:"operation" json:"operation"`
	CallerID  string    `bson:"caller_id" json:"caller_id"`
	ItemCount int       `bson:"item_count" json:"item_count"`
	Inserted  int64     `bson:"inserted" json:"inserted"`
	Modified  int64     `bson:"modified" json:"modified"`
	Deleted   int64     `bson:"deleted" json:"deleted"`
	Failed    int64     `bson:"failed" json:"failed"`
	Duration  int64     `bson:"duration_ms" json:"duration_ms"`
	Attempts  int       `bson:"attempts" json:"attempts"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type GetOperationLogsReq struct {
	Operation string `query:"operation" validate:"omitempty,max=64"`
	CallerID  string `query:"caller_id" validate:"omitempty,max=64"`
	Limit     int64  `query:"limit" validate:"gte=0,lte=500"`
	Offset    int64  `query:"offset" validate:"gte=0"`
}

func (r *GetOperationLogsReq) Validate() error {
	r.Operation = strings.TrimSpace(r.Operation)
	r.CallerID = strings.TrimSpace(r.CallerID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Limit == 0 {
		r.Limit = 50
	}

	return nil
}

// GetOperationLogsResponse is a paginated log listing.
type GetOperationLogsResponse struct {
	Total int64           `json:"total"`
	Logs  []*OperationLog `json:"logs"`
}
