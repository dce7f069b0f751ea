package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestBulkResultFromWrite(t *testing.T) {
	keys := []string{"SKU-1", "SKU-2", "SKU-3"}

	t.Run("clean result maps counts", func(t *testing.T) {
		res := &mongo.BulkWriteResult{
			MatchedCount:  2,
			ModifiedCount: 1,
			UpsertedCount: 1,
		}
		out, err := bulkResultFromWrite(keys, res, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), out.MatchedCount)
		assert.Equal(t, int64(1), out.ModifiedCount)
		assert.Equal(t, int64(1), out.UpsertedCount)
		assert.Equal(t, int64(0), out.FailedCount)
		assert.Empty(t, out.FailedItems)
	})

	t.Run("bulk write exception is partial success", func(t *testing.T) {
		res := &mongo.BulkWriteResult{MatchedCount: 2, ModifiedCount: 2}
		bulkErr := mongo.BulkWriteException{
			WriteErrors: []mongo.BulkWriteError{
				{WriteError: mongo.WriteError{Index: 1, Code: 11000, Message: "E11000 duplicate key error"}},
			},
		}
		out, err := bulkResultFromWrite(keys, res, bulkErr)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), out.FailedCount)
		assert.Len(t, out.FailedItems, 1)
		assert.Equal(t, "SKU-2", out.FailedItems[0].Key)
		assert.Contains(t, out.FailedItems[0].Reason, "E11000")
		assert.Equal(t, int64(2), out.ModifiedCount)
	})

	t.Run("write error index out of range keeps empty key", func(t *testing.T) {
		bulkErr := mongo.BulkWriteException{
			WriteErrors: []mongo.BulkWriteError{
				{WriteError: mongo.WriteError{Index: 99, Message: "boom"}},
			},
		}
		out, err := bulkResultFromWrite(keys, nil, bulkErr)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), out.FailedCount)
		assert.Equal(t, "", out.FailedItems[0].Key)
	})

	t.Run("transport error passes through", func(t *testing.T) {
		cause := errors.New("connection refused")
		out, err := bulkResultFromWrite(keys, nil, cause)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, cause)
	})
}
