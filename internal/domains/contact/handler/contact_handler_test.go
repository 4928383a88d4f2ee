package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/contact"
	"orgsite-backend/internal/domains/contact/service"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/internal/testutil"
)

type memRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]contact.Contact
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[uuid.UUID]contact.Contact{}}
}

func (m *memRepo) List(ctx context.Context, activeOnly bool) ([]contact.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]contact.Contact, 0, len(m.items))
	for _, c := range m.items {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memRepo) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[id]
	if !ok {
		return nil, apperror.ErrRecordNotFound
	}
	return &c, nil
}

func (m *memRepo) Create(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.items[c.ID] = *c
	return c, nil
}

func (m *memRepo) Update(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[c.ID]; !ok {
		return nil, apperror.ErrRecordNotFound
	}
	c.UpdatedAt = time.Now()
	m.items[c.ID] = *c
	return c, nil
}

func (m *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return apperror.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *testutil.PageRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pages := &testutil.PageRecorder{}
	h := NewContactHandler(service.NewContactService(newMemRepo(), pages))

	r := gin.New()
	g := r.Group("/api/v1/contacts")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r, pages
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	r, pages := setupRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/contacts", gin.H{
		"type": "email", "value": "hello@club.org", "label": "General", "order": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created contact.Contact
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.IsActive, "isActive defaults to true")
	assert.Equal(t, []string{"/"}, pages.Seen())

	w, env = do(t, r, http.MethodGet, "/api/v1/contacts/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got contact.Contact
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "email", got.Type)
	assert.Equal(t, "hello@club.org", got.Value)
	require.NotNil(t, got.Label)
	assert.Equal(t, "General", *got.Label)
	assert.Equal(t, 2, got.Order)
}

func TestList_OrderedByOrderAsc(t *testing.T) {
	r, _ := setupRouter(t)

	for _, order := range []int{3, 1, 2} {
		w, _ := do(t, r, http.MethodPost, "/api/v1/contacts", gin.H{"type": "phone", "value": "0123", "order": order})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := do(t, r, http.MethodGet, "/api/v1/contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []contact.Contact
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].Order, list[1].Order, list[2].Order})
}

func TestCreate_ValidationErrors(t *testing.T) {
	r, pages := setupRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/contacts", gin.H{"type": "fax", "order": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "type")
	assert.Contains(t, env.Error.Details, "value")
	assert.Contains(t, env.Error.Details, "order")
	assert.Empty(t, pages.Seen())
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	r, _ := setupRouter(t)

	_, env := do(t, r, http.MethodPost, "/api/v1/contacts", gin.H{"type": "facebook", "value": "fb.com/club"})
	var created contact.Contact
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env := do(t, r, http.MethodPut, "/api/v1/contacts/"+created.ID.String(), gin.H{"isActive": false})
	require.Equal(t, http.StatusOK, w.Code)

	var updated contact.Contact
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.False(t, updated.IsActive)
	assert.Equal(t, "fb.com/club", updated.Value)

	w, _ = do(t, r, http.MethodPut, "/api/v1/contacts/"+created.ID.String(), gin.H{"type": "fax"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotFound(t *testing.T) {
	r, _ := setupRouter(t)
	unknown := uuid.NewString()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/contacts/" + unknown},
		{http.MethodGet, "/api/v1/contacts/not-a-uuid"},
		{http.MethodPut, "/api/v1/contacts/" + unknown},
		{http.MethodDelete, "/api/v1/contacts/" + unknown},
	} {
		w, env := do(t, r, tc.method, tc.path, gin.H{})
		assert.Equal(t, http.StatusNotFound, w.Code, tc.method+" "+tc.path)
		assert.Equal(t, "CONTACT_NOT_FOUND", env.Error.Code)
	}
}

func TestDeleteThenGet(t *testing.T) {
	r, _ := setupRouter(t)

	_, env := do(t, r, http.MethodPost, "/api/v1/contacts", gin.H{"type": "address", "value": "1 Campus Rd"})
	var created contact.Contact
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/contacts/"+created.ID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w, _ = do(t, r, http.MethodGet, "/api/v1/contacts/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreate_MalformedJSON(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
