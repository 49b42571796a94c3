package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/joestump/worklog/internal/metrics"
	"github.com/joestump/worklog/internal/store"
)

// recordsAPIHandler provides REST handlers for record management.
type recordsAPIHandler struct {
	records store.RecordStoreIface
}

// registerRecordRoutes registers record routes on r. Non-numeric ids do not
// match any route and fall through to 404.
func registerRecordRoutes(r chi.Router, records store.RecordStoreIface) {
	h := &recordsAPIHandler{records: records}
	r.Get("/records", h.List)
	r.Post("/records", h.Create)
	r.Get("/records/{id:[0-9]+}", h.Get)
	r.Put("/records/{id:[0-9]+}", h.Update)
	r.Delete("/records/{id:[0-9]+}", h.Delete)
}

// List returns a page of records filtered by keyword and tag substring.
// GET /api/1/records?keyword=&tags=&offset=&limit=
//
// @Summary      List or search records
// @Description  Substring match on content (keyword) and on the stored tag string (tags).
// @Tags         Records
// @Produce      json
// @Param        keyword  query     string  false  "Content substring"
// @Param        tags     query     string  false  "Tag substring"
// @Param        offset   query     int     false  "Offset (default 0)"
// @Param        limit    query     int     false  "Limit (default 20)"
// @Success      200      {object}  Envelope[RecordListData]
// @Failure      401      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Security     BearerToken
// @Router       /records [get]
func (h *recordsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := parsePagination(r)
	params := store.ListParams{
		Keyword: r.URL.Query().Get("keyword"),
		Tags:    r.URL.Query().Get("tags"),
		Limit:   limit,
		Offset:  offset,
	}

	records, count, err := h.records.List(r.Context(), params)
	if err != nil {
		writeStoreError(w, r, err, "list records")
		return
	}

	data := RecordListData{Records: make([]*RecordResponse, 0, len(records)), Count: count}
	for _, rec := range records {
		data.Records = append(data.Records, toRecordResponse(rec))
	}
	writeOK(w, data)
}

// Create adds a new record.
// POST /api/1/records
//
// @Summary      Create a record
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        body  body      CreateRecordRequest  true  "Record to create"
// @Success      200   {object}  Envelope[RecordData]
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /records [post]
func (h *recordsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required", "BAD_REQUEST")
		return
	}

	rec, err := h.records.Create(r.Context(), req.Content, req.Tags)
	if err != nil {
		writeStoreError(w, r, err, "create record")
		return
	}
	metrics.RecordsCreatedTotal.Inc()

	writeOK(w, RecordData{Record: toRecordResponse(rec)})
}

// Get returns a single record by id.
// GET /api/1/records/{id}
//
// @Summary      Get a record
// @Tags         Records
// @Produce      json
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  Envelope[RecordData]
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /records/{id} [get]
func (h *recordsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	rec, err := h.records.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "get record")
		return
	}

	writeOK(w, RecordData{Record: toRecordResponse(rec)})
}

// Update overwrites the content and/or tags of a record. Only keys in
// mutableFields are accepted; id and created_at cannot be changed.
// PUT /api/1/records/{id}
//
// @Summary      Update a record
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        id    path      int     true  "Record ID"
// @Param        body  body      object  true  "Any of content, tags"
// @Success      200   {object}  Envelope[RecordData]
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /records/{id} [put]
func (h *recordsAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	upd, err := parseRecordUpdate(body)
	if err != nil {
		if fe, ok := err.(*fieldError); ok {
			writeError(w, http.StatusBadRequest, fe.msg, fe.code)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	rec, err := h.records.Update(r.Context(), id, upd)
	if err != nil {
		writeStoreError(w, r, err, "update record")
		return
	}
	metrics.RecordsUpdatedTotal.Inc()

	writeOK(w, RecordData{Record: toRecordResponse(rec)})
}

// Delete removes a record. Deleting an absent id succeeds.
// DELETE /api/1/records/{id}
//
// @Summary      Delete a record
// @Tags         Records
// @Produce      json
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  Envelope[any]
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /records/{id} [delete]
func (h *recordsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	if err := h.records.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "delete record")
		return
	}
	metrics.RecordsDeletedTotal.Inc()

	writeJSON(w, http.StatusOK, Envelope[any]{Msg: "OK"})
}

// recordID parses the {id} URL param. Ids that overflow int64 are treated as
// absent records.
func recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "record not found", "NOT_FOUND")
		return 0, false
	}
	return id, true
}

// mutableFields lists the record fields a client may overwrite.
var mutableFields = map[string]bool{
	"content": true,
	"tags":    true,
}

type fieldError struct {
	code string
	msg  string
}

func (e *fieldError) Error() string { return e.msg }

// parseRecordUpdate turns a client field map into a store.RecordUpdate,
// rejecting keys outside mutableFields and values of the wrong type.
func parseRecordUpdate(body map[string]json.RawMessage) (store.RecordUpdate, error) {
	var upd store.RecordUpdate
	for key, raw := range body {
		if !mutableFields[key] {
			return upd, &fieldError{code: "IMMUTABLE_FIELD", msg: fmt.Sprintf("field %q cannot be updated", key)}
		}
		if isJSONNull(raw) {
			return upd, &fieldError{code: "BAD_REQUEST", msg: fmt.Sprintf("field %q must not be null", key)}
		}
		switch key {
		case "content":
			var content string
			if err := json.Unmarshal(raw, &content); err != nil {
				return upd, &fieldError{code: "BAD_REQUEST", msg: "content must be a string"}
			}
			upd.Content = &content
		case "tags":
			var tags []string
			if err := json.Unmarshal(raw, &tags); err != nil {
				return upd, &fieldError{code: "BAD_REQUEST", msg: "tags must be an array of strings"}
			}
			upd.Tags = &tags
		}
	}
	return upd, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
