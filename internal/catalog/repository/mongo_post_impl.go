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

func postUpsertUpdate(p *model.Post, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"title":         p.Title,
			"date":          p.Date,
			"tags":          p.Tags,
			"author":        p.Author,
			"draft":         p.Draft,
			"revision":      p.Revision,
			"source_path":   p.SourcePath,
			"body_markdown": p.BodyMarkdown,
			"body_html":     p.BodyHTML,
			"deleted":       false,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"slug":       p.Slug,
			"created_at": now,
		},
		// Re-syncing a soft-deleted slug resurrects it
		"$unset": bson.M{
			"deleted_at": "",
			"deleted_by": "",
		},
	}
}

func (r *MongoRepository) BulkUpsertPosts(ctx context.Context, posts []*model.Post) (*model.BulkResult, error) {
	if len(posts) == 0 {
		return &model.BulkResult{}, nil
	}

	now := time.Now()

	keys := make([]string, 0, len(posts))
	writeModels := make([]mongo.WriteModel, 0, len(posts))
	for _, p := range posts {
		p.UpdatedAt = now
		keys = append(keys, p.Slug)

		writeModel := mongo.NewUpdateOneModel().
			SetFilter(bson.M{"slug": p.Slug}).
			SetUpdate(postUpsertUpdate(p, now)).
			SetUpsert(true)
		writeModels = append(writeModels, writeModel)
	}

	opts := options.BulkWrite().SetOrdered(false)
	res, err := r.Posts.BulkWrite(ctx, writeModels, opts)

	return bulkResultFromWrite(keys, res, err)
}

func (r *MongoRepository) SoftDeletePostsExcept(ctx context.Context, keepSlugs []string, deletedBy string) (int64, error) {
	now := time.Now()

	filter := bson.M{
		"deleted": false,
	}
	if len(keepSlugs) > 0 {
		filter["slug"] = bson.M{"$nin": keepSlugs}
	}

	update := bson.M{
		"$set": bson.M{
			"deleted":    true,
			"deleted_at": now,
			"deleted_by": deletedBy,
			"updated_at": now,
		},
	}

	res, err := r.Posts.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MongoRepository) FindPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	filter := bson.M{
		"slug":    slug,
		"deleted": false,
	}

	var post model.Post
	err := r.Posts.FindOne(ctx, filter).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *MongoRepository) ListPosts(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	query := bson.M{}
	if !filter.IncludeDeleted {
		query["deleted"] = false
	}
	if !filter.IncludeDrafts {
		query["draft"] = false
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(filter.Offset)
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.Posts.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
