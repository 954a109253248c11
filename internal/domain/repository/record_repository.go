package repository

import (
	"context"
	"snapkitty-api/internal/domain/entity"
)

// RecordRepository persists upload records. Enrichment writes are targeted
// per-field updates keyed by id so concurrent stages on the same record
// cannot clobber each other's fields.
type RecordRepository interface {
	Create(ctx context.Context, rec *entity.UploadRecord) error
	FindByID(ctx context.Context, id string) (*entity.UploadRecord, error)
	List(ctx context.Context, limit int) ([]entity.UploadRecord, error)
	UpdateExtractedText(ctx context.Context, id, text string) error
	UpdateKeywords(ctx context.Context, id, keywords string) error
	UpdateSolution(ctx context.Context, id, solution string) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int, error)
	StoredFileNames(ctx context.Context) ([]string, error)
}
