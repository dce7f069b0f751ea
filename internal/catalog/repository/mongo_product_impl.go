package repository

import (
	"context"
	"errors"
	"time"

	"catalog7/internal/catalog/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func productUpsertUpdate(p *model.Product, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"name":        p.Name,
			"description": p.Description,
			"brand":       p.Brand,
			"price_cents": p.PriceCents,
			"quantity":    p.Quantity,
			"deleted":     false,
			"updated_at":  now,
			"updated_by":  p.UpdatedBy,
		},
		"$setOnInsert": bson.M{
			"sku":        p.SKU,
			"created_at": now,
			"created_by": p.CreatedBy,
		},
		// Upserting a soft-deleted SKU resurrects it
		"$unset": bson.M{
			"deleted_at": "",
			"deleted_by": "",
		},
	}
}

func (r *MongoRepository) BulkUpsertProducts(ctx context.Context, products []*model.Product) (*model.BulkResult, error) {
	if len(products) == 0 {
		return &model.BulkResult{}, nil
	}

	now := time.Now()

	keys := make([]string, 0, len(products))
	writeModels := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		p.UpdatedAt = now
		keys = append(keys, p.SKU)

		writeModel := mongo.NewUpdateOneModel().
			SetFilter(bson.M{"sku": p.SKU}).
			SetUpdate(productUpsertUpdate(p, now)).
			SetUpsert(true)
		writeModels = append(writeModels, writeModel)
	}

	// Ordered: false allows partial success and lets the server parallelize
	opts := options.BulkWrite().SetOrdered(false)
	res, err := r.Products.BulkWrite(ctx, writeModels, opts)

	return bulkResultFromWrite(keys, res, err)
}

func (r *MongoRepository) BulkSoftDeleteProducts(ctx context.Context, skus []string, deletedBy string) (*model.BulkResult, error) {
	if len(skus) == 0 {
		return &model.BulkResult{}, nil
	}

	now := time.Now()

	writeModels := make([]mongo.WriteModel, 0, len(skus))
	for _, sku := range skus {
		filter := bson.M{
			"sku":     sku,
			"deleted": false,
		}
		update := bson.M{
			"$set": bson.M{
				"deleted":    true,
				"deleted_at": now,
				"deleted_by": deletedBy,
				"updated_at": now,
			},
		}
		writeModels = append(writeModels, mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update))
	}

	opts := options.BulkWrite().SetOrdered(false)
	res, err := r.Products.BulkWrite(ctx, writeModels, opts)

	result, err := bulkResultFromWrite(skus, res, err)
	if err != nil {
		return nil, err
	}
	// For soft delete, modified documents are the deleted ones
	result.DeletedCount = result.ModifiedCount
	return result, nil
}

func (r *MongoRepository) UpsertProduct(ctx context.Context, product *model.Product) error {
	now := time.Now()
	product.UpdatedAt = now

	opts := options.Update().SetUpsert(true)
	_, err := r.Products.UpdateOne(ctx, bson.M{"sku": product.SKU}, productUpsertUpdate(product, now), opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	filter := bson.M{
		"sku":     sku,
		"deleted": false,
	}

	var product model.Product
	err := r.Products.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func productQuery(filter model.ProductFilter) bson.M {
	query := bson.M{}
	if !filter.IncludeDeleted {
		query["deleted"] = false
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.NamePrefix != "" {
		query["name"] = bson.M{
			"$gte": filter.NamePrefix,
			"$lt":  filter.NamePrefix + "￿",
		}
	}
	return query
}

func (r *MongoRepository) ListProducts(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sku", Value: 1}}).
		SetSkip(filter.Offset)
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.Products.Find(ctx, productQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoRepository) CountProducts(ctx context.Context, filter model.ProductFilter) (int64, error) {
	return r.Products.CountDocuments(ctx, productQuery(filter))
}

// ListProductSKUs reads every SKU straight off the unique sku index.
// Projection excludes _id and the filter touches only indexed fields, so the
// query is covered and never fetches a document.
func (r *MongoRepository) ListProductSKUs(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "sku": 1}).
		SetSort(bson.D{{Key: "sku", Value: 1}}).
		SetHint(idxProductSKU)

	filter := bson.M{"sku": bson.M{"$gt": ""}}

	cursor, err := r.Products.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var skus []string
	for cursor.Next(ctx) {
		var row struct {
			SKU string `bson:"sku"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		skus = append(skus, row.SKU)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return skus, nil
}
