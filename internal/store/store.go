package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyContent is returned when a record would be saved without content.
	ErrEmptyContent = errors.New("content must not be empty")
)

// RecordStoreIface exposes all record data operations.
// Handlers never query the DB directly; all access goes through this interface.
type RecordStoreIface interface {
	List(ctx context.Context, p ListParams) ([]*Record, int, error)
	GetByID(ctx context.Context, id int64) (*Record, error)
	Create(ctx context.Context, content string, tags []string) (*Record, error)
	Update(ctx context.Context, id int64, u RecordUpdate) (*Record, error)
	Delete(ctx context.Context, id int64) error
}

var _ RecordStoreIface = (*RecordStore)(nil)
