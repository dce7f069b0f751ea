package repository

import (
	"catalog7/internal/catalog/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// bulkResultFromWrite maps a driver BulkWrite outcome onto a BulkResult.
// keys holds the business identifier of each submitted operation, in
// submission order, so write errors can be attributed by index.
//
// A mongo.BulkWriteException is partial success, not failure: the unordered
// write already applied every operation the server accepted. Any other error
// (network, topology) is returned as-is for the caller to retry.
func bulkResultFromWrite(keys []string, res *mongo.BulkWriteResult, err error) (*model.BulkResult, error) {
	out := &model.BulkResult{}
	if res != nil {
		out.InsertedCount = res.InsertedCount
		out.MatchedCount = res.MatchedCount
		out.ModifiedCount = res.ModifiedCount
		out.UpsertedCount = res.UpsertedCount
		out.DeletedCount = res.DeletedCount
	}

	if err == nil {
		return out, nil
	}

	bulkErr, ok := err.(mongo.BulkWriteException)
	if !ok {
		return nil, err
	}

	out.FailedCount = int64(len(bulkErr.WriteErrors))
	for _, writeErr := range bulkErr.WriteErrors {
		idx := writeErr.Index
		key := ""
		if idx >= 0 && idx < len(keys) {
			key = keys[idx]
		}
		out.FailedItems = append(out.FailedItems, model.FailedItem{
			Key:    key,
			Reason: writeErr.Message,
		})
	}

	return out, nil
}
