package upload

import (
	"context"
	"log"
	"strings"
	"time"

	"snapkitty-api/internal/domain/apperr"
	"snapkitty-api/internal/domain/entity"
	"snapkitty-api/internal/domain/repository"
)

type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte, filename string) (string, error)
}

type KeywordService interface {
	ExtractKeywords(ctx context.Context, text string) (string, error)
}

type SolutionService interface {
	GenerateSolution(ctx context.Context, text string) (string, error)
}

type FileStore interface {
	Save(originalName string, data []byte) (string, error)
	Remove(storedName string) error
}

const (
	defaultTextLimit      = 500
	defaultHistoryLimit   = 20
	defaultServiceTimeout = 30 * time.Second
)

type UploadUsecase struct {
	records        repository.RecordRepository
	files          FileStore
	extractor      TextExtractor
	keywords       KeywordService
	solver         SolutionService
	textLimit      int
	historyLimit   int
	serviceTimeout time.Duration
}

func NewUploadUsecase(
	records repository.RecordRepository,
	files FileStore,
	extractor TextExtractor,
	keywords KeywordService,
	solver SolutionService,
	textLimit int,
	historyLimit int,
	serviceTimeout time.Duration,
) *UploadUsecase {
	if textLimit <= 0 {
		textLimit = defaultTextLimit
	}
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	if serviceTimeout <= 0 {
		serviceTimeout = defaultServiceTimeout
	}
	return &UploadUsecase{
		records:        records,
		files:          files,
		extractor:      extractor,
		keywords:       keywords,
		solver:         solver,
		textLimit:      textLimit,
		historyLimit:   historyLimit,
		serviceTimeout: serviceTimeout,
	}
}

// Ingest runs the full upload pipeline for one image. The record is durably
// persisted before any enrichment runs; a failed enrichment stage is logged
// and swallowed, so the caller always gets an acknowledgment once the file
// is stored and the record created.
func (uc *UploadUsecase) Ingest(
	ctx context.Context,
	originalName string,
	mimeType string,
	data []byte,
) (*entity.UploadRecord, error) {

	// 1 reject non-images before any side effect
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, apperr.Validation("only images are allowed")
	}

	// 2 write the file to durable storage
	storedName, err := uc.files.Save(originalName, data)
	if err != nil {
		return nil, apperr.Storage("failed to store uploaded file", err)
	}

	// 3 persist the record; this is the commitment point
	rec := &entity.UploadRecord{
		StoredFileName: storedName,
		UploadTime:     time.Now(),
	}
	if err := uc.records.Create(ctx, rec); err != nil {
		// The stored file is orphaned here. A file without a record is the
		// acceptable loss direction, never a record without a file.
		log.Printf("record creation failed, file %s left orphaned: %v", storedName, err)
		return nil, apperr.Storage("failed to create upload record", err)
	}

	// 4-5 enrichment; the record stays listable whatever happens here
	uc.enrich(ctx, rec, data)

	return rec, nil
}

// enrich runs text extraction then keyword extraction. The stages are
// ordered: keyword extraction always runs after extraction has finished,
// on whatever text (possibly empty) resulted.
func (uc *UploadUsecase) enrich(ctx context.Context, rec *entity.UploadRecord, image []byte) {
	text, err := uc.extractText(ctx, rec, image)
	if err != nil {
		log.Printf("text extraction skipped for record %s: %v", rec.ID, err)
	}

	if err := uc.extractKeywords(ctx, rec, text); err != nil {
		log.Printf("keyword extraction skipped for record %s: %v", rec.ID, err)
	}
}

func (uc *UploadUsecase) extractText(ctx context.Context, rec *entity.UploadRecord, image []byte) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, uc.serviceTimeout)
	defer cancel()

	text, err := uc.extractor.ExtractText(cctx, image, rec.StoredFileName)
	if err != nil {
		return "", err
	}

	// Bound the text so downstream prompts stay small.
	text = truncate(text, uc.textLimit)

	if err := uc.records.UpdateExtractedText(ctx, rec.ID, text); err != nil {
		return "", err
	}
	rec.ExtractedText = text
	return text, nil
}

func (uc *UploadUsecase) extractKeywords(ctx context.Context, rec *entity.UploadRecord, text string) error {
	cctx, cancel := context.WithTimeout(ctx, uc.serviceTimeout)
	defer cancel()

	keywords, err := uc.keywords.ExtractKeywords(cctx, text)
	if err != nil {
		return err
	}

	if err := uc.records.UpdateKeywords(ctx, rec.ID, keywords); err != nil {
		return err
	}
	rec.Keywords = keywords
	return nil
}

// Solve generates a worked solution for an existing record's extracted text
// and persists it. Repeated calls overwrite the previous solution; unlike
// the ingest enrichment stages, a failing service call here is surfaced.
func (uc *UploadUsecase) Solve(ctx context.Context, id string) (string, error) {
	rec, err := uc.records.FindByID(ctx, id)
	if err != nil {
		return "", apperr.Storage("failed to load record", err)
	}
	if rec == nil {
		return "", apperr.NotFound("record", id)
	}
	if strings.TrimSpace(rec.ExtractedText) == "" {
		return "", apperr.NoContent("record has no extracted text to solve")
	}

	cctx, cancel := context.WithTimeout(ctx, uc.serviceTimeout)
	defer cancel()

	solution, err := uc.solver.GenerateSolution(cctx, rec.ExtractedText)
	if err != nil {
		return "", apperr.Service("failed to generate solution", err)
	}

	if err := uc.records.UpdateSolution(ctx, id, solution); err != nil {
		return "", apperr.Storage("failed to save solution", err)
	}

	return solution, nil
}

// ListRecords returns the most recent records, newest first. The limit is
// capped by the configured history size.
func (uc *UploadUsecase) ListRecords(ctx context.Context, limit int) ([]entity.UploadRecord, error) {
	if limit <= 0 || limit > uc.historyLimit {
		limit = uc.historyLimit
	}

	recs, err := uc.records.List(ctx, limit)
	if err != nil {
		return nil, apperr.Storage("failed to list records", err)
	}
	return recs, nil
}

// DeleteRecord removes a record and then its backing file. The row goes
// first: if the file removal fails we log and keep going, leaving at worst
// an orphaned file.
func (uc *UploadUsecase) DeleteRecord(ctx context.Context, id string) error {
	rec, err := uc.records.FindByID(ctx, id)
	if err != nil {
		return apperr.Storage("failed to load record", err)
	}
	if rec == nil {
		return apperr.NotFound("record", id)
	}

	if err := uc.records.Delete(ctx, id); err != nil {
		return apperr.Storage("failed to delete record", err)
	}

	if err := uc.files.Remove(rec.StoredFileName); err != nil {
		log.Printf("failed to remove file %s for deleted record %s: %v", rec.StoredFileName, id, err)
	}

	return nil
}

// ClearRecords removes every record and reports how many existed. File
// removal is best effort, same as single deletion.
func (uc *UploadUsecase) ClearRecords(ctx context.Context) (int, error) {
	names, err := uc.records.StoredFileNames(ctx)
	if err != nil {
		return 0, apperr.Storage("failed to list stored files", err)
	}

	count, err := uc.records.DeleteAll(ctx)
	if err != nil {
		return 0, apperr.Storage("failed to clear records", err)
	}

	for _, name := range names {
		if err := uc.files.Remove(name); err != nil {
			log.Printf("failed to remove file %s while clearing records: %v", name, err)
		}
	}

	return count, nil
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
