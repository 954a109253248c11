// Package testutil holds in-memory fakes for the repositories, the file
// store, and the external services, so usecase and handler tests run
// without postgres, disk layout assumptions, or network.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"snapkitty-api/internal/domain/entity"
)

// RecordStore is an in-memory RecordRepository. Each error hook, when set,
// makes the matching method fail.
type RecordStore struct {
	mu      sync.Mutex
	records map[string]*entity.UploadRecord
	seq     map[string]int
	nextSeq int

	CreateErr error
	FindErr   error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]*entity.UploadRecord),
		seq:     make(map[string]int),
	}
}

func (s *RecordStore) Create(ctx context.Context, rec *entity.UploadRecord) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.UploadTime.IsZero() {
		rec.UploadTime = time.Now()
	}
	cp := *rec
	s.records[rec.ID] = &cp
	s.nextSeq++
	s.seq[rec.ID] = s.nextSeq
	return nil
}

func (s *RecordStore) FindByID(ctx context.Context, id string) (*entity.UploadRecord, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *RecordStore) List(ctx context.Context, limit int) ([]entity.UploadRecord, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []entity.UploadRecord
	for _, rec := range s.records {
		recs = append(recs, *rec)
	}
	// Newest first; creation order breaks timestamp ties.
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].UploadTime.Equal(recs[j].UploadTime) {
			return s.seq[recs[i].ID] > s.seq[recs[j].ID]
		}
		return recs[i].UploadTime.After(recs[j].UploadTime)
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (s *RecordStore) UpdateExtractedText(ctx context.Context, id, text string) error {
	return s.update(id, func(rec *entity.UploadRecord) { rec.ExtractedText = text })
}

func (s *RecordStore) UpdateKeywords(ctx context.Context, id, keywords string) error {
	return s.update(id, func(rec *entity.UploadRecord) { rec.Keywords = keywords })
}

func (s *RecordStore) UpdateSolution(ctx context.Context, id, solution string) error {
	return s.update(id, func(rec *entity.UploadRecord) { rec.Solution = solution })
}

func (s *RecordStore) update(id string, fn func(*entity.UploadRecord)) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[id]; ok {
		fn(rec)
	}
	return nil
}

func (s *RecordStore) Delete(ctx context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
	delete(s.seq, id)
	return nil
}

func (s *RecordStore) DeleteAll(ctx context.Context) (int, error) {
	if s.DeleteErr != nil {
		return 0, s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.records)
	s.records = make(map[string]*entity.UploadRecord)
	s.seq = make(map[string]int)
	return count, nil
}

func (s *RecordStore) StoredFileNames(ctx context.Context) ([]string, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for _, rec := range s.records {
		names = append(names, rec.StoredFileName)
	}
	return names, nil
}

func (s *RecordStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// FileStore is an in-memory upload.FileStore.
type FileStore struct {
	mu    sync.Mutex
	files map[string][]byte

	SaveErr   error
	RemoveErr error
}

func NewFileStore() *FileStore {
	return &FileStore{files: make(map[string][]byte)}
}

func (s *FileStore) Save(originalName string, data []byte) (string, error) {
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	cp := make([]byte, len(data))
	copy(cp, data)
	s.files[name] = cp
	return name, nil
}

func (s *FileStore) Remove(storedName string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.files, storedName)
	return nil
}

func (s *FileStore) Exists(storedName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[storedName]
	return ok
}

func (s *FileStore) Content(storedName string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files[storedName]
}

func (s *FileStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// FakeExtractor is an upload.TextExtractor returning canned text, or
// whatever Fn computes when set.
type FakeExtractor struct {
	mu    sync.Mutex
	calls int

	Text string
	Err  error
	Fn   func(image []byte, filename string) (string, error)
}

func (f *FakeExtractor) ExtractText(ctx context.Context, image []byte, filename string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.Fn != nil {
		return f.Fn(image, filename)
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}

func (f *FakeExtractor) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeKeywordService is an upload.KeywordService.
type FakeKeywordService struct {
	mu        sync.Mutex
	calls     int
	lastInput string

	Keywords string
	Err      error
	Fn       func(text string) (string, error)
}

func (f *FakeKeywordService) ExtractKeywords(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.lastInput = text
	f.mu.Unlock()
	if f.Fn != nil {
		return f.Fn(text)
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Keywords, nil
}

func (f *FakeKeywordService) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeKeywordService) LastInput() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastInput
}

// FakeSolutionService is an upload.SolutionService. When Solutions is set,
// each call pops the next entry, so repeated solves can answer differently.
type FakeSolutionService struct {
	mu    sync.Mutex
	calls int

	Solution  string
	Solutions []string
	Err       error
}

func (f *FakeSolutionService) GenerateSolution(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Solutions) > 0 {
		sol := f.Solutions[0]
		f.Solutions = f.Solutions[1:]
		return sol, nil
	}
	return f.Solution, nil
}

func (f *FakeSolutionService) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// UserStore is an in-memory UserRepository. Absent users surface
// sql.ErrNoRows, matching the postgres implementation.
type UserStore struct {
	mu    sync.Mutex
	users map[string]*entity.User

	CreateErr error
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*entity.User)}
}

func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	cp := *user
	s.users[user.Username] = &cp
	return nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *user
	return &cp, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			cp := *user
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}
