package model

// SyncPostsReq controls one run of the posts directory sync.
type SyncPostsReq struct {
	IncludeDrafts  bool `json:"include_drafts"`
	DeleteOrphaned bool `json:"delete_orphaned"`
}

func (r *SyncPostsReq) Validate() error {
	return nil
}

// SyncPostsResult summarizes one sync run.
type SyncPostsResult struct {
	FilesRead          int         `json:"files_read"`
	RevisionsCollapsed int         `json:"revisions_collapsed"`
	DraftsSkipped      int         `json:"drafts_skipped"`
	Upserts            *BulkResult `json:"upserts"`
	OrphansDeleted     int64       `json:"orphans_deleted"`
}
