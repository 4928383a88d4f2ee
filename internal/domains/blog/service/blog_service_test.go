package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/blog"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/internal/shared/markdown"
)

// memRepo enforces slug uniqueness like the blog_posts_slug_key constraint.
type memRepo struct {
	posts map[uuid.UUID]blog.Post
	clock time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{posts: map[uuid.UUID]blog.Post{}, clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memRepo) slugTaken(slug string, except uuid.UUID) bool {
	for id, p := range m.posts {
		if p.Slug == slug && id != except {
			return true
		}
	}
	return false
}

func (m *memRepo) List(ctx context.Context, filter blog.ListFilter) ([]blog.Post, error) {
	out := []blog.Post{}
	for _, p := range m.posts {
		if filter.PublishedOnly && !p.IsPublished {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperror.ErrRecordNotFound
	}
	return &p, nil
}

func (m *memRepo) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, apperror.ErrRecordNotFound
}

func (m *memRepo) Create(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	if m.slugTaken(p.Slug, uuid.Nil) {
		return nil, apperror.ErrDuplicate
	}
	m.clock = m.clock.Add(time.Minute)
	p.ID, p.CreatedAt, p.UpdatedAt = uuid.New(), m.clock, m.clock
	m.posts[p.ID] = *p
	return p, nil
}

func (m *memRepo) Update(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	if m.slugTaken(p.Slug, p.ID) {
		return nil, apperror.ErrDuplicate
	}
	m.posts[p.ID] = *p
	return p, nil
}

func (m *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.posts[id]; !ok {
		return apperror.ErrRecordNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *memRepo) Count(ctx context.Context) (int64, error) { return int64(len(m.posts)), nil }

func newService(repo blog.Repository) *blogService {
	svc := NewBlogService(repo, markdown.NewRenderer()).(*blogService)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_DerivesSlugAndDefaults(t *testing.T) {
	svc := newService(newMemRepo())

	post, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title:   "Chào mừng Tân Sinh Viên 2025",
		Content: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "chao-mung-tan-sinh-vien-2025", post.Slug)
	assert.False(t, post.IsPublished)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, []string{}, post.Tags)
}

func TestCreate_NonLatinTitleGetsFallbackSlug(t *testing.T) {
	svc := newService(newMemRepo())

	post, err := svc.Create(context.Background(), &blog.CreatePostRequest{Title: "Новости", Content: "x"})
	require.NoError(t, err)
	assert.Regexp(t, `^post-[0-9a-f]{8}$`, post.Slug)
}

func TestCreate_MissingTitleReportsTitle(t *testing.T) {
	svc := newService(newMemRepo())

	_, err := svc.Create(context.Background(), &blog.CreatePostRequest{Content: "x"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details, "title")
	assert.NotContains(t, appErr.Details, "slug")
}

func TestCreate_PublishedGetsTimestamp(t *testing.T) {
	svc := newService(newMemRepo())

	post, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Launch", Content: "x", IsPublished: true,
	})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, svc.now(), *post.PublishedAt)
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo := newMemRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &blog.CreatePostRequest{Title: "A", Slug: "same", Content: "x"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &blog.CreatePostRequest{Title: "B", Slug: "same", Content: "y"})
	assert.ErrorIs(t, err, blog.ErrDuplicateSlug)

	appErr, _ := apperror.As(err)
	assert.Equal(t, 400, appErr.Status())
	assert.Len(t, repo.posts, 1)
}

func TestCreate_InvalidSlug(t *testing.T) {
	svc := newService(newMemRepo())

	_, err := svc.Create(context.Background(), &blog.CreatePostRequest{Title: "A", Slug: "Not A Slug", Content: "x"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Details, "slug")
}

func TestGetPublishedBySlug(t *testing.T) {
	svc := newService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, &blog.CreatePostRequest{Title: "Draft", Content: "# Draft"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &blog.CreatePostRequest{Title: "Live", Content: "# Live\n\nBody", IsPublished: true})
	require.NoError(t, err)

	_, err = svc.GetPublishedBySlug(ctx, "draft")
	assert.ErrorIs(t, err, blog.ErrPostNotFound)

	detail, err := svc.GetPublishedBySlug(ctx, "live")
	require.NoError(t, err)
	assert.Contains(t, detail.ContentHTML, `<h1 id="live">Live</h1>`)
	assert.Equal(t, "# Live\n\nBody", detail.Content)
}

func TestUpdate_PublishKeepsExistingTimestamp(t *testing.T) {
	svc := newService(newMemRepo())
	ctx := context.Background()

	earlier := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	post, err := svc.Create(ctx, &blog.CreatePostRequest{Title: "Xmas", Content: "x", PublishedAt: &earlier})
	require.NoError(t, err)
	assert.False(t, post.IsPublished)

	published := true
	updated, err := svc.Update(ctx, post.ID, &blog.UpdatePostRequest{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, earlier, *updated.PublishedAt)
	assert.Equal(t, "xmas", updated.Slug)
}

func TestUpdate_SlugConflict(t *testing.T) {
	svc := newService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, &blog.CreatePostRequest{Title: "One", Content: "x"})
	require.NoError(t, err)
	two, err := svc.Create(ctx, &blog.CreatePostRequest{Title: "Two", Content: "x"})
	require.NoError(t, err)

	slug := "one"
	_, err = svc.Update(ctx, two.ID, &blog.UpdatePostRequest{Slug: &slug})
	assert.ErrorIs(t, err, blog.ErrDuplicateSlug)
}

func TestList_NewestFirstAndPublishedFilter(t *testing.T) {
	svc := newService(newMemRepo())
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, &blog.CreatePostRequest{Title: title, Content: "x", IsPublished: title != "second"})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, blog.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{all[0].Title, all[1].Title, all[2].Title})

	published, err := svc.List(ctx, blog.ListFilter{PublishedOnly: true})
	require.NoError(t, err)
	assert.Len(t, published, 2)
}

func TestDelete_ThenGet(t *testing.T) {
	svc := newService(newMemRepo())
	ctx := context.Background()

	post, err := svc.Create(ctx, &blog.CreatePostRequest{Title: "Gone", Content: "x"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, post.ID))

	_, err = svc.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, post.ID), blog.ErrPostNotFound)
}
