package postgres

import (
	"context"
	"database/sql"
	"time"

	"snapkitty-api/internal/domain/entity"
	"snapkitty-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type recordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

// create record
func (r *recordRepository) Create(ctx context.Context, rec *entity.UploadRecord) error {
	rec.ID = uuid.New().String()
	if rec.UploadTime.IsZero() {
		rec.UploadTime = time.Now()
	}

	query := `
			INSERT INTO upload_records (id, filename, "uploadTime", "extractedText", keywords, solution)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.StoredFileName, rec.UploadTime, rec.ExtractedText, rec.Keywords, rec.Solution)
	return err
}

// find record by id
func (r *recordRepository) FindByID(ctx context.Context, id string) (*entity.UploadRecord, error) {
	var rec entity.UploadRecord
	query := `SELECT * FROM upload_records WHERE id = $1`
	err := r.db.GetContext(ctx, &rec, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// list records, most recent first
func (r *recordRepository) List(ctx context.Context, limit int) ([]entity.UploadRecord, error) {
	var recs []entity.UploadRecord
	query := `SELECT * FROM upload_records ORDER BY "uploadTime" DESC LIMIT $1`
	err := r.db.SelectContext(ctx, &recs, query, limit)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// update extracted text
func (r *recordRepository) UpdateExtractedText(ctx context.Context, id, text string) error {
	query := `UPDATE upload_records SET "extractedText" = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, text, id)
	return err
}

// update keywords
func (r *recordRepository) UpdateKeywords(ctx context.Context, id, keywords string) error {
	query := `UPDATE upload_records SET keywords = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, keywords, id)
	return err
}

// update solution
func (r *recordRepository) UpdateSolution(ctx context.Context, id, solution string) error {
	query := `UPDATE upload_records SET solution = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, solution, id)
	return err
}

// delete record
func (r *recordRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM upload_records WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// delete all records, returning how many existed
func (r *recordRepository) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM upload_records`)
	if err != nil {
		return 0, err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// list stored file names for file cleanup
func (r *recordRepository) StoredFileNames(ctx context.Context) ([]string, error) {
	var names []string
	query := `SELECT filename FROM upload_records`
	err := r.db.SelectContext(ctx, &names, query)
	if err != nil {
		return nil, err
	}
	return names, nil
}
