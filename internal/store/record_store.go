package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Record represents a row in the records table.
type Record struct {
	ID        int64     `db:"id"`
	Content   string    `db:"content"`
	Tags      string    `db:"tags"`
	CreatedAt time.Time `db:"created_at"`
}

// TagList returns the record's tags in stored order.
func (r *Record) TagList() []string {
	return SplitTags(r.Tags)
}

// DefaultLimit is the page size used when ListParams.Limit is not positive.
const DefaultLimit = 20

// ListParams filters and pages a record listing. Keyword and Tags are
// unanchored substring matches; an empty value applies no constraint.
type ListParams struct {
	Keyword string
	Tags    string
	Limit   int
	Offset  int
}

// RecordUpdate holds the mutable fields of a record. Nil fields are left as is.
type RecordUpdate struct {
	Content *string
	Tags    *[]string
}

const recordColumns = "id, content, tags, created_at"

// RecordStore is the sqlx-backed implementation of RecordStoreIface.
type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *RecordStore) q(query string) string { return s.db.Rebind(query) }

// List returns one page of records matching p in insertion order, plus the
// total number of matches before paging.
func (s *RecordStore) List(ctx context.Context, p ListParams) ([]*Record, int, error) {
	countQuery, countArgs, err := applyFilters(sq.Select("COUNT(*)").From("records"), p).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := s.db.GetContext(ctx, &count, s.q(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	query, args, err := applyFilters(sq.Select(recordColumns).From("records"), p).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(max(p.Offset, 0))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	records := []*Record{}
	if err := s.db.SelectContext(ctx, &records, s.q(query), args...); err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}
	return records, count, nil
}

func applyFilters(b sq.SelectBuilder, p ListParams) sq.SelectBuilder {
	if p.Keyword != "" {
		b = b.Where(sq.Like{"content": "%" + p.Keyword + "%"})
	}
	if p.Tags != "" {
		b = b.Where(sq.Like{"tags": "%" + p.Tags + "%"})
	}
	return b
}

// GetByID returns the record matching id, or ErrNotFound.
func (s *RecordStore) GetByID(ctx context.Context, id int64) (*Record, error) {
	var r Record
	err := s.db.GetContext(ctx, &r, s.q(`SELECT `+recordColumns+` FROM records WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a new record stamped with the current time, truncated to
// whole seconds.
func (s *RecordStore) Create(ctx context.Context, content string, tags []string) (*Record, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	joined, err := JoinTags(tags)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Truncate(time.Second)

	query, args, err := sq.Insert("records").
		Columns("content", "tags", "created_at").
		Values(content, joined, now).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	id, err := s.insert(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	return &Record{ID: id, Content: content, Tags: joined, CreatedAt: now}, nil
}

// insert runs an INSERT and returns the generated id. lib/pq does not
// implement LastInsertId, so PostgreSQL uses RETURNING instead.
func (s *RecordStore) insert(ctx context.Context, query string, args []any) (int64, error) {
	if s.db.DriverName() == "postgres" {
		var id int64
		err := s.db.QueryRowxContext(ctx, s.q(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := s.db.ExecContext(ctx, s.q(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update applies u to the record with the given id and returns the result.
// Returns ErrNotFound when no such record exists.
func (s *RecordStore) Update(ctx context.Context, id int64, u RecordUpdate) (*Record, error) {
	b := sq.Update("records").Where(sq.Eq{"id": id})
	changed := false
	if u.Content != nil {
		if *u.Content == "" {
			return nil, ErrEmptyContent
		}
		b = b.Set("content", *u.Content)
		changed = true
	}
	var joined string
	if u.Tags != nil {
		var err error
		if joined, err = JoinTags(*u.Tags); err != nil {
			return nil, err
		}
		b = b.Set("tags", joined)
		changed = true
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var r Record
	err = tx.GetContext(ctx, &r, tx.Rebind(`SELECT `+recordColumns+` FROM records WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load record %d: %w", id, err)
	}

	if !changed {
		return &r, nil
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("update record %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if u.Content != nil {
		r.Content = *u.Content
	}
	if u.Tags != nil {
		r.Tags = joined
	}
	return &r, nil
}

// Delete removes the record with the given id. Deleting a missing id is not an error.
func (s *RecordStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM records WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	return nil
}
