package services_test

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/app/services"
	"github.com/haca/placement/internal/pkg/apperrors"
	"github.com/haca/placement/internal/pkg/cache"
)

type fakeStudentStore struct {
	students      map[int64]*models.Student
	byUser        map[int64]*models.Student
	byStatus      map[models.ApprovalStatus][]*models.Student
	counts        map[models.ApprovalStatus]int
	statusUpdates map[int64]models.ApprovalStatus
	resumeUpdates map[int64]string
	statusCalls   int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		students:      make(map[int64]*models.Student),
		byUser:        make(map[int64]*models.Student),
		byStatus:      make(map[models.ApprovalStatus][]*models.Student),
		counts:        make(map[models.ApprovalStatus]int),
		statusUpdates: make(map[int64]models.ApprovalStatus),
		resumeUpdates: make(map[int64]string),
	}
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	s, ok := f.byUser[userID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) GetByStatus(_ context.Context, status models.ApprovalStatus) ([]*models.Student, error) {
	return f.byStatus[status], nil
}

func (f *fakeStudentStore) UpdateStatus(_ context.Context, id int64, status models.ApprovalStatus) error {
	f.statusCalls++
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeStudentStore) UpdateResumeURL(_ context.Context, id int64, resumeURL string) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.resumeUpdates[id] = resumeURL
	return nil
}

func (f *fakeStudentStore) CountByStatus(_ context.Context) (map[models.ApprovalStatus]int, error) {
	return f.counts, nil
}

type fakeStorage struct {
	url     string
	saves   int
	deleted []string
}

func (f *fakeStorage) SaveFile(_ *multipart.FileHeader) (string, error) {
	f.saves++
	return f.url, nil
}

func (f *fakeStorage) DeleteFile(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}

func noCache() *cache.StudentCache {
	// nil client disables Redis; the cache becomes a no-op
	return cache.NewStudentCache(nil, 0, zerolog.Nop())
}

func TestStudentServiceUpdateStatus(t *testing.T) {
	t.Run("approves a pending student", func(t *testing.T) {
		store := newFakeStudentStore()
		store.students[10] = &models.Student{ID: 10, Status: models.StatusPending}
		svc := services.NewStudentService(store, &fakeStorage{}, noCache(), zerolog.Nop())

		err := svc.UpdateStatus(context.Background(), 10, models.StatusApproved)

		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, store.statusUpdates[10])
	})

	t.Run("rejects an unknown status without touching the store", func(t *testing.T) {
		store := newFakeStudentStore()
		svc := services.NewStudentService(store, &fakeStorage{}, noCache(), zerolog.Nop())

		err := svc.UpdateStatus(context.Background(), 10, models.ApprovalStatus("archived"))

		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
		assert.Zero(t, store.statusCalls)
	})

	t.Run("propagates student not found", func(t *testing.T) {
		store := newFakeStudentStore()
		svc := services.NewStudentService(store, &fakeStorage{}, noCache(), zerolog.Nop())

		err := svc.UpdateStatus(context.Background(), 999, models.StatusRejected)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("allows rejected back to approved", func(t *testing.T) {
		store := newFakeStudentStore()
		store.students[7] = &models.Student{ID: 7, Status: models.StatusRejected}
		svc := services.NewStudentService(store, &fakeStorage{}, noCache(), zerolog.Nop())

		require.NoError(t, svc.UpdateStatus(context.Background(), 7, models.StatusApproved))
		assert.Equal(t, models.StatusApproved, store.statusUpdates[7])
	})
}

func TestStudentServiceListByStatus(t *testing.T) {
	store := newFakeStudentStore()
	store.byStatus[models.StatusPending] = []*models.Student{{ID: 1}, {ID: 2}}
	svc := services.NewStudentService(store, &fakeStorage{}, noCache(), zerolog.Nop())

	t.Run("returns students for a valid status", func(t *testing.T) {
		got, err := svc.ListByStatus(context.Background(), models.StatusPending)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := svc.ListByStatus(context.Background(), models.ApprovalStatus("nope"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})
}

func TestStudentServiceCounts(t *testing.T) {
	store := newFakeStudentStore()
	store.counts[models.StatusPending] = 3
	store.counts[models.StatusApproved] = 5
	svc := services.NewStudentService(store, &fakeStorage{}, noCache(), zerolog.Nop())

	counts, err := svc.Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, counts.Pending)
	assert.Equal(t, 5, counts.Approved)
	assert.Equal(t, 0, counts.Rejected)
}

func TestStudentServiceUploadResume(t *testing.T) {
	t.Run("stores the file and records its URL", func(t *testing.T) {
		store := newFakeStudentStore()
		store.students[10] = &models.Student{ID: 10, UserID: 1}
		store.byUser[1] = store.students[10]
		storage := &fakeStorage{url: "http://localhost:8080/uploads/abc.pdf"}
		svc := services.NewStudentService(store, storage, noCache(), zerolog.Nop())

		url, err := svc.UploadResume(context.Background(), 1, &multipart.FileHeader{Filename: "cv.pdf"})

		require.NoError(t, err)
		assert.Equal(t, storage.url, url)
		assert.Equal(t, storage.url, store.resumeUpdates[10])
		assert.Empty(t, storage.deleted, "first upload has nothing to replace")
	})

	t.Run("replacing a resume removes the old file", func(t *testing.T) {
		oldURL := "http://localhost:8080/uploads/old.pdf"
		store := newFakeStudentStore()
		store.students[10] = &models.Student{ID: 10, UserID: 1, ResumeURL: &oldURL}
		store.byUser[1] = store.students[10]
		storage := &fakeStorage{url: "http://localhost:8080/uploads/new.pdf"}
		svc := services.NewStudentService(store, storage, noCache(), zerolog.Nop())

		url, err := svc.UploadResume(context.Background(), 1, &multipart.FileHeader{Filename: "cv.pdf"})

		require.NoError(t, err)
		assert.Equal(t, storage.url, url)
		assert.Equal(t, []string{oldURL}, storage.deleted)
	})

	t.Run("fails for a user without a student profile", func(t *testing.T) {
		store := newFakeStudentStore()
		storage := &fakeStorage{}
		svc := services.NewStudentService(store, storage, noCache(), zerolog.Nop())

		_, err := svc.UploadResume(context.Background(), 42, &multipart.FileHeader{Filename: "cv.pdf"})

		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.Zero(t, storage.saves)
	})
}
