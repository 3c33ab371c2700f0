package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sdgportal/internal/kv"
	"sdgportal/internal/model"
	"sdgportal/internal/repository"
	"sdgportal/internal/repository/kvstore"
	"sdgportal/internal/storage"
	storeMocks "sdgportal/internal/storage/mocks"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

// newTestService builds the facade over a real repository and in-memory
// backing store, seeded and ready.
func newTestService(t *testing.T) (DocumentService, *storeMocks.MockStorage) {
	t.Helper()
	mStore := new(storeMocks.MockStorage)
	repo := kvstore.NewCollectionKV(kv.NewMemoryStore())
	svc := NewDocumentService(mStore, repo, fixedClock{t: testNow})
	require.NoError(t, svc.Initialize(context.Background()))
	return svc, mStore
}

func TestInitialize_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	// Mutate, then re-initialize: the existing collection must survive.
	_, err = svc.Add(ctx, model.DocumentDraft{Title: "New", FileName: "n.pdf"})
	require.NoError(t, err)
	require.NoError(t, svc.Initialize(ctx))

	docs, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 4)
}

func TestAdd_SeedScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	doc, err := svc.Add(ctx, model.DocumentDraft{
		Title:    "New Report",
		FileName: "r.pdf",
		FileSize: "1.00",
		Category: "research",
		Tags:     []string{"x"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, doc.ID)
	assert.Equal(t, "New Report", doc.Title)
	assert.Equal(t, "June 15, 2025", doc.UploadDate)
	assert.Equal(t, testNow, doc.LastModified)

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 4)
	assert.Equal(t, 4, docs[0].ID, "new document must be first")

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalDocuments)
}

func TestAdd_IDsUniqueAndMonotonic(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	seen := map[int]struct{}{}
	prev := 0
	for i := 0; i < 10; i++ {
		doc, err := svc.Add(ctx, model.DocumentDraft{
			Title:    fmt.Sprintf("Doc %d", i),
			FileName: fmt.Sprintf("doc-%d.pdf", i),
		})
		require.NoError(t, err)

		_, dup := seen[doc.ID]
		assert.False(t, dup, "id %d assigned twice", doc.ID)
		seen[doc.ID] = struct{}{}
		assert.Greater(t, doc.ID, prev)
		prev = doc.ID
	}
}

func TestAdd_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Add(ctx, model.DocumentDraft{FileName: "f.pdf"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Add(ctx, model.DocumentDraft{Title: "T"})
	assert.ErrorIs(t, err, ErrFileNameRequired)

	// Missing category and tags are normalized, not rejected.
	doc, err := svc.Add(ctx, model.DocumentDraft{Title: "T", FileName: "f.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "sustainability", doc.Category)
	assert.Equal(t, []string{}, doc.Tags)
	assert.Equal(t, model.PlaceholderFileURL, doc.FileURL)

	// An explicitly empty tag list survives as [], not null, all the way
	// through persistence and the detached copy.
	doc, err = svc.Add(ctx, model.DocumentDraft{Title: "T2", FileName: "f2.pdf", Tags: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, doc.Tags)

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Tags)
}

func TestGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	added, err := svc.Add(ctx, model.DocumentDraft{
		Title:       "Round Trip",
		Description: "desc",
		FileName:    "rt.pdf",
		FileSize:    "0.50",
		Category:    "education",
		Tags:        []string{"a", "b"},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_PreservesUntouchedFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	before, err := svc.Get(ctx, 2)
	require.NoError(t, err)

	title := "X"
	updated, err := svc.Update(ctx, 2, model.DocumentPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, testNow, updated.LastModified)
	assert.Equal(t, before.Description, updated.Description)
	assert.Equal(t, before.FileName, updated.FileName)
	assert.Equal(t, before.FileSize, updated.FileSize)
	assert.Equal(t, before.FileURL, updated.FileURL)
	assert.Equal(t, before.UploadDate, updated.UploadDate)
	assert.Equal(t, before.Category, updated.Category)
	assert.Equal(t, before.Tags, updated.Tags)
}

func TestUpdate_NotFound(t *testing.T) {
	title := "X"
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 42, model.DocumentPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Delete(ctx, 1))

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	// Second delete of the same id still reports success and changes nothing.
	require.NoError(t, svc.Delete(ctx, 1))
	docs, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestDelete_RemovesStoredObject(t *testing.T) {
	ctx := context.Background()
	svc, mStore := newTestService(t)

	mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			return storage.ObjectInfo{Key: key, Size: opt.Size}
		}, nil)
	doc, err := svc.Upload(ctx, strings.NewReader("content"), UploadInput{
		Title:    "Uploaded",
		FileName: "u.pdf",
		Size:     7,
	})
	require.NoError(t, err)

	mStore.On("Delete", ctx, doc.FileURL).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, doc.ID))
	mStore.AssertExpectations(t)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	upper, err := svc.Search(ctx, "REPORT")
	require.NoError(t, err)
	lower, err := svc.Search(ctx, "report")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	require.NotEmpty(t, upper)
	assert.Equal(t, "SDG Annual Report 2023", upper[0].Title)
}

func TestSearch_MatchesTags(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.Search(ctx, "recycling")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 2, res[0].ID)
}

func TestSearch_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Add(ctx, model.DocumentDraft{
			Title:    fmt.Sprintf("Energy audit %d", i),
			FileName: fmt.Sprintf("e%d.pdf", i),
		})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	res, err := svc.Search(ctx, "energy audit")
	require.NoError(t, err)

	require.Len(t, res, 3)
	// Filtered order matches the full listing's relative order.
	assert.Equal(t, all[0].ID, res[0].ID)
	assert.Equal(t, all[1].ID, res[1].ID)
	assert.Equal(t, all[2].ID, res[2].ID)
}

func TestFilterByCategory_ExactMatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Add(ctx, model.DocumentDraft{
		Title:    "Partial category",
		FileName: "p.pdf",
		Category: "research-adjacent",
	})
	require.NoError(t, err)

	res, err := svc.FilterByCategory(ctx, "research")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "research", res[0].Category)
}

func TestBackupRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	before, err := svc.List(ctx)
	require.NoError(t, err)

	b, err := svc.Backup(ctx)
	require.NoError(t, err)
	assert.Equal(t, testNow, b.BackupDate)

	// Mutate arbitrarily.
	_, err = svc.Add(ctx, model.DocumentDraft{Title: "After backup", FileName: "a.pdf"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 1))

	require.NoError(t, svc.Restore(ctx))

	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRestore_WithoutBackup(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoBackup)
}

func TestBackup_OverwritesPreviousSlot(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Backup(ctx)
	require.NoError(t, err)

	_, err = svc.Add(ctx, model.DocumentDraft{Title: "Second state", FileName: "s.pdf"})
	require.NoError(t, err)
	_, err = svc.Backup(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Restore(ctx))
	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 4, "restore must reflect the latest backup")
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)

	// Seed sizes: 2.40 + 1.10 + 3.75
	assert.Equal(t, 3, stats.TotalDocuments)
	assert.Equal(t, "7.25", stats.TotalSize)
	assert.Equal(t, map[string]int{
		"sustainability": 1,
		"environment":    1,
		"research":       1,
	}, stats.ByCategory)
	assert.Equal(t, testNow, stats.LastUpdated)
}

func TestStatistics_UnparsableSizeCountsZero(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Add(ctx, model.DocumentDraft{
		Title:    "Bad size",
		FileName: "b.pdf",
		FileSize: "unknown",
	})
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalDocuments)
	assert.Equal(t, "7.25", stats.TotalSize)
}

func TestStatistics_AdditivityAfterMutations(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Add(ctx, model.DocumentDraft{Title: "A", FileName: "a.pdf"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 2))
	require.NoError(t, svc.Delete(ctx, 2))

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(docs), stats.TotalDocuments)
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		svc, mStore := newTestService(t)

		r := strings.NewReader("hello world")
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "sdg/") && strings.HasSuffix(key, ".txt")
		}), r, storage.PutObjectOptions{
			Size:        11,
			ContentType: "text/plain",
			Metadata:    map[string]string{"original-filename": "notes.txt"},
		}).Return(storage.ObjectInfo{Key: "sdg/uuid.txt", Size: 11, ContentType: "text/plain"}, nil)

		doc, err := svc.Upload(ctx, r, UploadInput{
			Title:       "Notes",
			FileName:    "notes.txt",
			ContentType: "text/plain",
			Size:        11,
			Category:    "education",
		})
		require.NoError(t, err)

		assert.Equal(t, 4, doc.ID)
		assert.Equal(t, "sdg/uuid.txt", doc.FileURL)
		assert.Equal(t, "0.00", doc.FileSize) // 11 bytes rounds to 0.00 MB
		mStore.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Upload(ctx, nil, UploadInput{Title: "T", FileName: "f.pdf"})
		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, mStore := newTestService(t)

		r := strings.NewReader("hello")
		mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("storage fail"))

		_, err := svc.Upload(ctx, r, UploadInput{Title: "T", FileName: "f.pdf", Size: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "upload to storage: storage fail")
	})

	t.Run("metadata failure rolls back the object", func(t *testing.T) {
		svc, mStore := newTestService(t)

		r := strings.NewReader("hello")
		mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key, Size: opt.Size}
			}, nil)
		mStore.On("Delete", ctx, mock.Anything).Return(nil).Once()

		// Empty title fails draft validation after the object is stored.
		_, err := svc.Upload(ctx, r, UploadInput{FileName: "f.pdf", Size: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "metadata save failed")
		mStore.AssertExpectations(t)
	})
}

func TestDownloadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("placeholder seed document", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.DownloadURL(ctx, 1)
		assert.ErrorIs(t, err, ErrNoFile)
	})

	t.Run("uploaded document", func(t *testing.T) {
		svc, mStore := newTestService(t)

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key, Size: opt.Size}
			}, nil)
		doc, err := svc.Upload(ctx, strings.NewReader("x"), UploadInput{
			Title: "T", FileName: "f.pdf", Size: 1,
		})
		require.NoError(t, err)

		mStore.On("PresignGet", ctx, doc.FileURL, presignExpiry).
			Return("https://minio.local/presigned", nil)

		u, err := svc.DownloadURL(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/presigned", u)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.DownloadURL(ctx, 404)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	data, err := svc.Export(ctx)
	require.NoError(t, err)

	var coll model.Collection
	require.NoError(t, json.Unmarshal(data, &coll))
	assert.Len(t, coll.Documents, 3)
	assert.Equal(t, 4, coll.NextID)

	// Mutate, then import the exported snapshot: replace semantics.
	_, err = svc.Add(ctx, model.DocumentDraft{Title: "Extra", FileName: "e.pdf"})
	require.NoError(t, err)

	require.NoError(t, svc.Import(ctx, data))
	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestImport_RejectsInvalidPayloads(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: "{broken"},
		{name: "duplicate ids", data: `{"documents":[{"id":1},{"id":1}],"nextId":2}`},
		{name: "counter behind ids", data: `{"documents":[{"id":9}],"nextId":4}`},
		{name: "non-positive counter", data: `{"documents":[],"nextId":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Import(ctx, []byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidImport)
		})
	}

	// The live collection is untouched by rejected imports.
	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestReturnedValuesAreDetached(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	docs[0].Title = "mutated"
	docs[0].Tags[0] = "mutated"

	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Title)
	assert.NotEqual(t, "mutated", again[0].Tags[0])
}
