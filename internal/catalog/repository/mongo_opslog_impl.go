package repository

import (
	"context"
	"time"

	"catalog7/internal/catalog/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureOpsLogIndexes creates indexes for efficient querying
func (r *MongoRepository) EnsureOpsLogIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "operation", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_operation_query"),
		},
		{
			Keys: bson.D{
				{Key: "caller_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_caller_query"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}

	_, err := r.OpsLog.Indexes().CreateMany(ctx, indexes)
	return err
}

// CreateOperationLog appends one audit record (append-only)
func (r *MongoRepository) CreateOperationLog(ctx context.Context, entry *model.OperationLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.OpsLog.InsertOne(ctx, entry)
	return err
}

// FindOperationLogs lists audit records with pagination and filtering
func (r *MongoRepository) FindOperationLogs(ctx context.Context, req model.GetOperationLogsReq) ([]*model.OperationLog, int64, error) {
	filter := bson.M{}
	if req.Operation != "" {
		filter["operation"] = req.Operation
	}
	if req.CallerID != "" {
		filter["caller_id"] = req.CallerID
	}

	total, err := r.OpsLog.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(req.Offset).
		SetLimit(req.Limit)

	cursor, err := r.OpsLog.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var logs []*model.OperationLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
