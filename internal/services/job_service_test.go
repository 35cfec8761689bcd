package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/generation"
	"github.com/yungbote/studyforge-backend/internal/types"
)

type fakeJobRepo struct {
	jobs []*types.GenerationJob
}

func (f *fakeJobRepo) Create(ctx context.Context, tx *gorm.DB, job *types.GenerationJob) (*types.GenerationJob, error) {
	f.jobs = append(f.jobs, job)
	return job, nil
}

func (f *fakeJobRepo) UpdateFields(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeJobRepo) GetByID(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (*types.GenerationJob, error) {
	for _, j := range f.jobs {
		if j.ID == jobID {
			return j, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJobRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.GenerationJob, error) {
	var out []*types.GenerationJob
	for _, j := range f.jobs {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func TestJobReadIsOwnerScoped(t *testing.T) {
	owner := uuid.New()
	repo := &fakeJobRepo{jobs: []*types.GenerationJob{
		{ID: uuid.New(), UserID: owner, Kind: "roadmap", Status: "done"},
	}}
	svc := NewJobService(nil, testLogger(t), repo)

	job, err := svc.GetByIDForRequestUser(ownerContext(owner), nil, repo.jobs[0].ID)
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if job.Kind != "roadmap" {
		t.Fatalf("kind: got %q", job.Kind)
	}

	_, err = svc.GetByIDForRequestUser(ownerContext(uuid.New()), nil, repo.jobs[0].ID)
	if !generation.IsCode(err, generation.CodeNotFound) {
		t.Fatalf("stranger read: want=%s got=%v", generation.CodeNotFound, err)
	}
}

func TestListJobsFiltersByOwner(t *testing.T) {
	owner := uuid.New()
	repo := &fakeJobRepo{jobs: []*types.GenerationJob{
		{ID: uuid.New(), UserID: owner},
		{ID: uuid.New(), UserID: owner},
		{ID: uuid.New(), UserID: uuid.New()},
	}}
	svc := NewJobService(nil, testLogger(t), repo)

	jobs, err := svc.ListForRequestUser(ownerContext(owner), nil)
	if err != nil {
		t.Fatalf("ListForRequestUser: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("jobs: want=2 got=%d", len(jobs))
	}
}
