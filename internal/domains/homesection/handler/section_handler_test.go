package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"orgsite-backend/internal/domains/homesection"
)

type stubService struct {
	bulk [][]homesection.CreateSectionRequest
}

func (s *stubService) List(ctx context.Context) ([]homesection.Section, error) {
	return []homesection.Section{}, nil
}
func (s *stubService) ListActive(ctx context.Context) ([]homesection.Section, error) {
	return []homesection.Section{}, nil
}
func (s *stubService) GetByID(ctx context.Context, id uuid.UUID) (*homesection.Section, error) {
	return nil, homesection.ErrSectionNotFound
}
func (s *stubService) Create(ctx context.Context, req *homesection.CreateSectionRequest) (*homesection.Section, error) {
	return req.ToEntity(), nil
}
func (s *stubService) Update(ctx context.Context, id uuid.UUID, req *homesection.UpdateSectionRequest) (*homesection.Section, error) {
	return nil, homesection.ErrSectionNotFound
}
func (s *stubService) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubService) BulkUpsert(ctx context.Context, reqs []homesection.CreateSectionRequest) (*homesection.UpsertResult, error) {
	s.bulk = append(s.bulk, reqs)
	if len(reqs) == 0 {
		return nil, homesection.ErrEmptyBulkRequest
	}
	return &homesection.UpsertResult{Sections: []homesection.Section{}, Inserted: 1, Updated: len(reqs) - 1}, nil
}

func router(svc homesection.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSectionHandler(svc)
	r := gin.New()
	r.PUT("/api/v1/home-sections", h.BulkUpsert)
	r.PUT("/api/v1/home-sections/:id", h.Update)
	r.GET("/api/v1/home-sections/:id", h.Get)
	return r
}

func put(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBulkUpsert_PassesArrayInOrder(t *testing.T) {
	svc := &stubService{}
	w := put(router(svc), "/api/v1/home-sections", `[{"name":"hero"},{"name":"about","order":2}]`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inserted":1`)
	assert.Contains(t, w.Body.String(), `"updated":1`)
	if assert.Len(t, svc.bulk, 1) {
		assert.Equal(t, "hero", svc.bulk[0][0].Name)
		assert.Equal(t, "about", svc.bulk[0][1].Name)
	}
}

func TestBulkUpsert_EmptyArrayIs400(t *testing.T) {
	w := put(router(&stubService{}), "/api/v1/home-sections", `[]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkUpsert_ObjectBodyIs400(t *testing.T) {
	svc := &stubService{}
	w := put(router(svc), "/api/v1/home-sections", `{"name":"hero"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.bulk)
}

func TestUpdate_NonUUIDIsNotFound(t *testing.T) {
	w := put(router(&stubService{}), "/api/v1/home-sections/abc", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
