package service

import (
	"context"
	"strings"
	"time"

	"catalog7/internal/catalog/content"
	"catalog7/internal/catalog/model"
	"catalog7/internal/catalog/util"
)

func (s *Service) SyncPosts(ctx context.Context, callerID string, req model.SyncPostsReq) (*model.SyncPostsResult, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	drafts, err := content.LoadDir(s.PostsDir)
	if err != nil {
		return nil, err
	}

	posts := content.Collapse(drafts)

	syncResult := &model.SyncPostsResult{
		FilesRead:          len(drafts),
		RevisionsCollapsed: len(drafts) - len(posts),
		Upserts:            &model.BulkResult{},
	}

	keep := make([]string, 0, len(posts))
	publish := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		if p.Draft && !req.IncludeDrafts {
			syncResult.DraftsSkipped++
			continue
		}
		publish = append(publish, p)
		keep = append(keep, p.Slug)
	}

	batchSize := s.SyncBatchSize
	if batchSize < 1 {
		batchSize = 500
	}

	start := time.Now()
	attempts := 1
	if len(publish) > 0 {
		attempts = 0
		// Large syncs go to the repository in batches; the per-batch
		// results roll up into one
		for from := 0; from < len(publish); from += batchSize {
			to := from + batchSize
			if to > len(publish) {
				to = len(publish)
			}
			batch := publish[from:to]

			result, tries, err := s.withBulkRetry(ctx, func() (*model.BulkResult, error) {
				return s.Posts.BulkUpsertPosts(ctx, batch)
			})
			if err != nil {
				return nil, err
			}
			syncResult.Upserts.Merge(result)
			attempts += tries
		}
	}

	if req.DeleteOrphaned {
		deleted, err := s.Posts.SoftDeletePostsExcept(ctx, keep, callerID)
		if err != nil {
			return nil, err
		}
		syncResult.OrphansDeleted = deleted
	}

	s.recordOperation(ctx, &model.OperationLog{
		Operation: model.OpSyncPosts,
		CallerID:  callerID,
		ItemCount: len(publish),
		Inserted:  syncResult.Upserts.UpsertedCount,
		Modified:  syncResult.Upserts.ModifiedCount,
		Deleted:   syncResult.OrphansDeleted,
		Failed:    syncResult.Upserts.FailedCount,
		Duration:  time.Since(start).Milliseconds(),
		Attempts:  attempts,
	})

	util.GetLogger().Info("posts synced",
		"caller", callerID,
		"files", syncResult.FilesRead,
		"published", len(publish),
		"collapsed", syncResult.RevisionsCollapsed,
		"orphans_deleted", syncResult.OrphansDeleted,
	)

	return syncResult, nil
}

func (s *Service) GetPost(ctx context.Context, slug string) (*model.Post, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrBadRequest
	}

	post, err := s.Posts.FindPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *Service) ListPosts(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	if filter.Limit == 0 {
		filter.Limit = 50
	}

	posts, err := s.Posts.ListPosts(ctx, filter)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*model.Post{}
	}
	return posts, nil
}

func (s *Service) GetOperationLogs(ctx context.Context, req model.GetOperationLogsReq) (*model.GetOperationLogsResponse, error) {
	logs, total, err := s.OpsLog.FindOperationLogs(ctx, req)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*model.OperationLog{}
	}
	return &model.GetOperationLogsResponse{Total: total, Logs: logs}, nil
}
