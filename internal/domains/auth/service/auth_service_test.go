package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"orgsite-backend/internal/domains/auth"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/pkg/jwt"
)

type memRepo struct {
	users map[string]auth.AdminUser
}

func (m *memRepo) FindByEmail(ctx context.Context, email string) (*auth.AdminUser, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, apperror.ErrRecordNotFound
	}
	return &u, nil
}

func (m *memRepo) Create(ctx context.Context, u *auth.AdminUser) (*auth.AdminUser, error) {
	if _, ok := m.users[u.Email]; ok {
		return nil, apperror.ErrDuplicate
	}
	u.ID = uuid.New()
	m.users[u.Email] = *u
	return u, nil
}

// memCache stores counters as decimal strings like Redis INCR does.
type memCache struct {
	data    map[string]string
	expires map[string]time.Duration
	err     error
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}, expires: map[string]time.Duration{}}
}

func (c *memCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal([]byte(raw), dest)
}
func (c *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, _ := json.Marshal(value)
	c.data[key] = string(raw)
	return c.err
}
func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return c.err
}
func (c *memCache) DeletePattern(ctx context.Context, pattern string) error { return c.err }
func (c *memCache) Ping(ctx context.Context) error                        { return c.err }
func (c *memCache) Increment(ctx context.Context, key string) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, _ := strconv.ParseInt(c.data[key], 10, 64)
	n++
	c.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}
func (c *memCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	c.expires[key] = ttl
	return c.err
}

const testIP = "10.0.0.1"

func fixture(t *testing.T, c *memCache) (auth.Service, *memRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &memRepo{users: map[string]auth.AdminUser{
		"admin@org.example": {ID: uuid.New(), Email: "admin@org.example", PasswordHash: string(hash), Role: auth.RoleAdmin, IsActive: true},
		"old@org.example":   {ID: uuid.New(), Email: "old@org.example", PasswordHash: string(hash), Role: auth.RoleAdmin, IsActive: false},
	}}
	limiter := NewLoginLimiter(c, 5, 15*time.Minute)
	return NewAuthService(repo, jwt.NewManager("test-secret", time.Hour), limiter), repo
}

func TestLogin_IssuesValidSession(t *testing.T) {
	c := newMemCache()
	svc, _ := fixture(t, c)

	res, err := svc.Login(context.Background(), &auth.LoginRequest{Email: " Admin@Org.example", Password: "correct-horse"}, testIP)
	require.NoError(t, err)
	assert.Equal(t, "admin@org.example", res.User.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)

	claims, err := svc.ValidateSessionToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID.String(), claims.UserID)
}

func TestLogin_RejectsBadCredentialsAndInactive(t *testing.T) {
	svc, _ := fixture(t, newMemCache())
	ctx := context.Background()

	cases := []auth.LoginRequest{
		{Email: "admin@org.example", Password: "wrong"},
		{Email: "nobody@org.example", Password: "correct-horse"},
		{Email: "old@org.example", Password: "correct-horse"},
	}
	for _, req := range cases {
		req := req
		_, err := svc.Login(ctx, &req, testIP)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials, req.Email)
	}
}

func TestLogin_BlocksAfterMaxFailures(t *testing.T) {
	c := newMemCache()
	svc, _ := fixture(t, c)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, &auth.LoginRequest{Email: "admin@org.example", Password: "wrong"}, testIP)
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}
	assert.Equal(t, 15*time.Minute, c.expires["login_attempts:"+testIP])

	_, err := svc.Login(ctx, &auth.LoginRequest{Email: "admin@org.example", Password: "correct-horse"}, testIP)
	require.ErrorIs(t, err, auth.ErrTooManyAttempts)
	appErr, _ := apperror.As(err)
	assert.Equal(t, 429, appErr.Status())

	// other clients are unaffected
	_, err = svc.Login(ctx, &auth.LoginRequest{Email: "admin@org.example", Password: "correct-horse"}, "10.0.0.2")
	assert.NoError(t, err)
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	c := newMemCache()
	svc, _ := fixture(t, c)
	ctx := context.Background()

	_, err := svc.Login(ctx, &auth.LoginRequest{Email: "admin@org.example", Password: "wrong"}, testIP)
	require.Error(t, err)
	_, err = svc.Login(ctx, &auth.LoginRequest{Email: "admin@org.example", Password: "correct-horse"}, testIP)
	require.NoError(t, err)
	assert.NotContains(t, c.data, "login_attempts:"+testIP)
}

func TestLogin_CacheOutageDoesNotBlock(t *testing.T) {
	c := newMemCache()
	c.err = errors.New("redis down")
	svc, _ := fixture(t, c)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "admin@org.example", Password: "correct-horse"}, testIP)
	assert.NoError(t, err)
}

func TestCreateAdmin(t *testing.T) {
	svc, repo := fixture(t, newMemCache())
	ctx := context.Background()

	created, err := svc.CreateAdmin(ctx, &auth.CreateAdminRequest{Email: "New@Org.example", Password: "longenough", Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "new@org.example", created.Email)
	assert.Equal(t, auth.RoleAdmin, created.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["new@org.example"].PasswordHash), []byte("longenough")))

	_, err = svc.CreateAdmin(ctx, &auth.CreateAdminRequest{Email: "new@org.example", Password: "longenough"})
	assert.ErrorIs(t, err, auth.ErrEmailExists)

	_, err = svc.CreateAdmin(ctx, &auth.CreateAdminRequest{Email: "x@org.example", Password: "short"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}
