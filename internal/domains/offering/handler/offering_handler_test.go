package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"orgsite-backend/internal/domains/offering"
	"orgsite-backend/internal/shared/apperror"
)

// stubService returns canned results and records the last create request.
type stubService struct {
	items      []offering.Offering
	err        error
	lastCreate *offering.CreateOfferingRequest
}

func (s *stubService) List(ctx context.Context) ([]offering.Offering, error) { return s.items, s.err }
func (s *stubService) ListActive(ctx context.Context) ([]offering.Offering, error) {
	return s.items, s.err
}
func (s *stubService) GetByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &offering.Offering{ID: id, Title: "Design"}, nil
}
func (s *stubService) Create(ctx context.Context, req *offering.CreateOfferingRequest) (*offering.Offering, error) {
	s.lastCreate = req
	if s.err != nil {
		return nil, s.err
	}
	return &offering.Offering{ID: uuid.New(), Title: req.Title, Sector: req.Sector}, nil
}
func (s *stubService) Update(ctx context.Context, id uuid.UUID, req *offering.UpdateOfferingRequest) (*offering.Offering, error) {
	return &offering.Offering{ID: id}, s.err
}
func (s *stubService) Delete(ctx context.Context, id uuid.UUID) error { return s.err }

func router(svc offering.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOfferingHandler(svc)
	r := gin.New()
	r.GET("/api/v1/services", h.List)
	r.POST("/api/v1/services", h.Create)
	r.GET("/api/v1/services/:id", h.Get)
	r.DELETE("/api/v1/services/:id", h.Delete)
	return r
}

func TestList_DataAccessFailureIsGeneric500(t *testing.T) {
	r := router(&stubService{err: apperror.Internal("Failed to fetch services", errors.New("dial tcp: refused"))})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch services")
}

func TestCreate_Returns201(t *testing.T) {
	svc := &stubService{}
	r := router(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/services",
		strings.NewReader(`{"title":"Branding","description":"Logos","sector":"Design","order":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	if assert.NotNil(t, svc.lastCreate) && assert.NotNil(t, svc.lastCreate.Order) {
		assert.Equal(t, 1, *svc.lastCreate.Order)
	}
	assert.Contains(t, w.Body.String(), `"sector":"Design"`)
}

func TestGet_NotFound(t *testing.T) {
	r := router(&stubService{err: offering.ErrOfferingNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/services/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SERVICE_NOT_FOUND")
}

func TestDelete_Success(t *testing.T) {
	r := router(&stubService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/services/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
