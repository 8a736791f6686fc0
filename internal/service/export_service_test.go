package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"betonfit/coach-app/internal/domain"
)

// fakeFileStorage records uploads and serves canned presigned URLs.
type fakeFileStorage struct {
	uploads     map[string][]byte
	contentType string
	uploadErr   error
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{uploads: make(map[string][]byte)}
}

func (f *fakeFileStorage) UploadObject(ctx context.Context, objectKey, contentType string, body []byte) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.contentType = contentType
	f.uploads[objectKey] = body
	return nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://bucket.example.com/" + objectKey + "?signed=1", nil
}

func (f *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	delete(f.uploads, objectKey)
	return nil
}

func TestExportProgramme(t *testing.T) {
	intakeRepo := newFakeIntakeRepo()
	progRepo := &fakeProgrammeRepo{}
	planner := NewPlannerService(intakeRepo, progRepo, nil, 3)
	ctx := context.Background()
	if err := planner.SaveIntake(ctx, storedIntake()); err != nil {
		t.Fatal(err)
	}
	programme, err := planner.GenerateForEmail(ctx, "marie@example.com", GenerateOptions{})
	if err != nil {
		t.Fatal(err)
	}

	store := newFakeFileStorage()
	svc := NewExportService(planner, store)

	url, err := svc.ExportProgramme(ctx, programme.ID)
	if err != nil {
		t.Fatalf("ExportProgramme: %v", err)
	}

	wantKey := "exports/marie@example.com/" + programme.ID + ".json"
	body, ok := store.uploads[wantKey]
	if !ok {
		t.Fatalf("no upload under %q, got %v", wantKey, store.uploads)
	}
	if store.contentType != "application/json" {
		t.Errorf("content type = %q", store.contentType)
	}
	if url != "https://bucket.example.com/"+wantKey+"?signed=1" {
		t.Errorf("url = %q", url)
	}

	var exported domain.Programme
	if err := json.Unmarshal(body, &exported); err != nil {
		t.Fatalf("exported body is not programme JSON: %v", err)
	}
	if exported.ID != programme.ID || len(exported.Sessions) != len(programme.Sessions) {
		t.Errorf("exported %q with %d sessions", exported.ID, len(exported.Sessions))
	}
}

func TestExportProgrammeNotFound(t *testing.T) {
	planner := NewPlannerService(newFakeIntakeRepo(), &fakeProgrammeRepo{}, nil, 3)
	svc := NewExportService(planner, newFakeFileStorage())

	_, err := svc.ExportProgramme(context.Background(), "prog-inexistant")
	if !errors.Is(err, ErrProgrammeNotFound) {
		t.Errorf("err = %v, want ErrProgrammeNotFound", err)
	}
}

func TestExportProgrammeUploadFailure(t *testing.T) {
	intakeRepo := newFakeIntakeRepo()
	progRepo := &fakeProgrammeRepo{}
	planner := NewPlannerService(intakeRepo, progRepo, nil, 3)
	ctx := context.Background()
	if err := planner.SaveIntake(ctx, storedIntake()); err != nil {
		t.Fatal(err)
	}
	programme, err := planner.GenerateForEmail(ctx, "marie@example.com", GenerateOptions{})
	if err != nil {
		t.Fatal(err)
	}

	store := newFakeFileStorage()
	store.uploadErr = errors.New("bucket unreachable")
	svc := NewExportService(planner, store)

	if _, err := svc.ExportProgramme(ctx, programme.ID); err == nil {
		t.Error("expected upload error to propagate")
	}
}
