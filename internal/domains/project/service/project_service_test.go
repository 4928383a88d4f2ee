package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/project"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/internal/testutil"
)

type stubRepo struct {
	items   map[uuid.UUID]project.Project
	failErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{items: map[uuid.UUID]project.Project{}}
}

func (s *stubRepo) List(ctx context.Context, activeOnly bool) ([]project.Project, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	out := []project.Project{}
	for _, p := range s.items {
		if !activeOnly || p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, apperror.ErrRecordNotFound
	}
	return &p, nil
}

func (s *stubRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	s.items[p.ID] = *p
	return p, nil
}

func (s *stubRepo) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	s.items[p.ID] = *p
	return p, nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return apperror.ErrRecordNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *stubRepo) Count(ctx context.Context) (int64, error) { return int64(len(s.items)), nil }

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreate_AppliesDefaults(t *testing.T) {
	svc := NewProjectService(newStubRepo(), nil)

	p, err := svc.Create(context.Background(), &project.CreateProjectRequest{
		Title:       "Campus App",
		Description: "Mobile app for freshmen",
	})
	require.NoError(t, err)
	assert.True(t, p.IsActive)
	assert.Equal(t, 0, p.Order)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewProjectService(newStubRepo(), nil)

	_, err := svc.Create(context.Background(), &project.CreateProjectRequest{
		Title:       "Campus App",
		Description: "desc",
		Image:       strPtr("not a url"),
		Year:        intPtr(1850),
		Tags:        []string{"ok", "this-tag-is-way-too-long-to-be-accepted-by-the-validator"},
	})
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	details := appErr.Details.(map[string]string)
	assert.Contains(t, details, "image")
	assert.Contains(t, details, "year")
	assert.Contains(t, details, "tags")
}

func TestCreate_AcceptsRelativeImage(t *testing.T) {
	svc := NewProjectService(newStubRepo(), nil)

	p, err := svc.Create(context.Background(), &project.CreateProjectRequest{
		Title: "Hackathon", Description: "48h", Image: strPtr("/images/hack.png"), Year: intPtr(2024),
	})
	require.NoError(t, err)
	assert.Equal(t, "/images/hack.png", *p.Image)
}

func TestUpdate_MergesAndRevalidatesHome(t *testing.T) {
	pages := &testutil.PageRecorder{}
	svc := NewProjectService(newStubRepo(), pages)
	ctx := context.Background()

	p, err := svc.Create(ctx, &project.CreateProjectRequest{Title: "A", Description: "B", Client: strPtr("Uni")})
	require.NoError(t, err)

	tags := []string{" go ", "", "web"}
	updated, err := svc.Update(ctx, p.ID, &project.UpdateProjectRequest{Tags: &tags, Order: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, updated.Tags)
	assert.Equal(t, 4, updated.Order)
	assert.Equal(t, "Uni", *updated.Client)
	assert.Equal(t, []string{"/", "/"}, pages.Seen())
}

func TestNotFoundMapping(t *testing.T) {
	svc := NewProjectService(newStubRepo(), nil)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, project.ErrProjectNotFound)

	_, err = svc.Update(ctx, uuid.New(), &project.UpdateProjectRequest{})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), project.ErrProjectNotFound)
}

func TestList_DataAccessFailure(t *testing.T) {
	repo := newStubRepo()
	repo.failErr = errors.New("pool closed")
	svc := NewProjectService(repo, nil)

	_, err := svc.List(context.Background())
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindInternal, appErr.Kind)
	assert.Equal(t, "Failed to fetch projects", appErr.Message)
}
