package api

import "github.com/joestump/worklog/internal/store"

// CreateRecordRequest is the request body for POST /api/1/records.
type CreateRecordRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// RecordResponse is the JSON representation of a single record.
// CreatedAt is a Unix timestamp in whole seconds.
type RecordResponse struct {
	ID        int64    `json:"id"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
}

// RecordData is the data member for single-record responses.
type RecordData struct {
	Record *RecordResponse `json:"record"`
}

// RecordListData is the data member for GET /api/1/records.
// Count is the number of matches before limit/offset were applied.
type RecordListData struct {
	Records []*RecordResponse `json:"records"`
	Count   int               `json:"count"`
}

func toRecordResponse(r *store.Record) *RecordResponse {
	return &RecordResponse{
		ID:        r.ID,
		Content:   r.Content,
		Tags:      r.TagList(),
		CreatedAt: r.CreatedAt.Unix(),
	}
}
