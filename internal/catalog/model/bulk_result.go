package model

// BulkResult reports the outcome of one batched write. Per-item failures do
// not fail the whole batch; they show up in FailedItems.
type BulkResult struct {
	InsertedCount int64        `json:"inserted_count"`
	MatchedCount  int64        `json:"matched_count"`
	ModifiedCount int64        `json:"modified_count"`
	UpsertedCount int64        `json:"upserted_count"`
	DeletedCount  int64        `json:"deleted_count"`
	FailedCount   int64        `json:"failed_count"`
	FailedItems   []FailedItem `json:"failed_items,omitempty"`
}

// FailedItem identifies one operation the server rejected.
type FailedItem struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// Merge folds another result into r. Used when a sync spans several batches.
func (r *BulkResult) Merge(other *BulkResult) {
	if other == nil {
		return
	}
	r.InsertedCount += other.InsertedCount
	r.MatchedCount += other.MatchedCount
	r.ModifiedCount += other.ModifiedCount
	r.UpsertedCount += other.UpsertedCount
	r.DeletedCount += other.DeletedCount
	r.FailedCount += other.FailedCount
	r.FailedItems = append(r.FailedItems, other.FailedItems...)
}
