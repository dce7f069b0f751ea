package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const idxProductSKU = "uniq_product_sku"

type MongoRepository struct {
	Products *mongo.Collection
	Posts    *mongo.Collection
	OpsLog   *mongo.Collection
	Client   *mongo.Client
}

func NewMongoRepository(db *mongo.Database, productsCollection, postsCollection, opsLogCollection string) *MongoRepository {
	repo := &MongoRepository{
		Products: db.Collection(productsCollection),
		Posts:    db.Collection(postsCollection),
		OpsLog:   db.Collection(opsLogCollection),
		Client:   db.Client(),
	}
	return repo
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// 1. Unique SKU index. Also the index behind the covered SKU listing.
	idxSKU := mongo.IndexModel{
		Keys: bson.D{
			{Key: "sku", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName(idxProductSKU),
	}

	// 2. Active products by brand; partial so deleted rows stay out of it
	idxBrandActive := mongo.IndexModel{
		Keys: bson.D{
			{Key: "brand", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().
			SetName("brand_name_active").
			SetPartialFilterExpression(bson.M{
				"deleted": false,
			}),
	}

	_, err := r.Products.Indexes().CreateMany(ctx, []mongo.IndexModel{idxSKU, idxBrandActive})
	return err
}

func (r *MongoRepository) EnsurePostIndexes(ctx context.Context) error {
	idxSlug := mongo.IndexModel{
		Keys: bson.D{
			{Key: "slug", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_post_slug"),
	}

	idxDate := mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: -1},
		},
		Options: options.Index().
			SetName("post_date_active").
			SetPartialFilterExpression(bson.M{
				"deleted": false,
			}),
	}

	_, err := r.Posts.Indexes().CreateMany(ctx, []mongo.IndexModel{idxSlug, idxDate})
	return err
}
