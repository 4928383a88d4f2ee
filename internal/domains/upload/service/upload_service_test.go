package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/upload"
	"orgsite-backend/internal/infrastructure/queue"
	"orgsite-backend/internal/infrastructure/storage"
	"orgsite-backend/internal/shared"
)

type memStorage struct {
	objects map[string][]byte
	types   map[string]string
	uploads int
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.uploads++
	m.objects[key] = data
	m.types[key] = contentType
	return "http://blob.test/orgsite/" + key, nil
}

func (m *memStorage) Download(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

type recordingQueue struct {
	payloads []interface{}
}

func (q *recordingQueue) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	q.payloads = append(q.payloads, payload)
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newService(st *memStorage, q queue.Enqueuer) *uploadService {
	svc := NewUploadService(st, storage.NewImageProcessor(), q, Config{MaxBytes: 1 << 20}).(*uploadService)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestUpload_RejectsPlainText(t *testing.T) {
	st := newMemStorage()
	svc := newService(st, &recordingQueue{})

	_, err := svc.Upload(context.Background(), &upload.File{
		Filename: "notes.txt", ContentType: "text/plain", Data: []byte("hello"),
	})
	assert.ErrorIs(t, err, upload.ErrNotAnImage)
	assert.Zero(t, st.uploads)
}

func TestUpload_RejectsSpoofedImage(t *testing.T) {
	st := newMemStorage()
	svc := newService(st, &recordingQueue{})

	_, err := svc.Upload(context.Background(), &upload.File{
		Filename: "evil.png", ContentType: "image/png", Data: []byte("#!/bin/sh\necho hi\n"),
	})
	assert.ErrorIs(t, err, upload.ErrNotAnImage)
	assert.Zero(t, st.uploads)
}

func TestUpload_RejectsOversize(t *testing.T) {
	st := newMemStorage()
	svc := NewUploadService(st, nil, nil, Config{MaxBytes: 10})

	_, err := svc.Upload(context.Background(), &upload.File{
		Filename: "a.png", ContentType: "image/png", Data: pngBytes(t, 4, 4),
	})
	assert.ErrorIs(t, err, upload.ErrFileTooLarge)
	assert.Zero(t, st.uploads)
}

func TestUpload_StoresAndEnqueuesVariants(t *testing.T) {
	st := newMemStorage()
	q := &recordingQueue{}
	svc := newService(st, q)

	res, err := svc.Upload(context.Background(), &upload.File{
		Filename: "../Ảnh nhóm.png", ContentType: "image/png", Folder: "team/../2025", Data: pngBytes(t, 8, 8),
	})
	require.NoError(t, err)

	assert.Equal(t, "team/2025/1700000000000-Anh-nhom.png", res.Key)
	assert.Equal(t, "http://blob.test/orgsite/"+res.Key, res.URL)
	assert.Equal(t, "image/png", st.types[res.Key])
	require.Len(t, q.payloads, 1)
	assert.Equal(t, shared.ProcessUploadImagePayload{ObjectKey: res.Key}, q.payloads[0])
}

func TestUpload_DefaultFolder(t *testing.T) {
	svc := newService(newMemStorage(), nil)

	res, err := svc.Upload(context.Background(), &upload.File{
		Filename: "a.png", ContentType: "image/png", Data: pngBytes(t, 2, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/1700000000000-a.png", res.Key)
}

func TestProcessVariants_StoresNextToOriginal(t *testing.T) {
	st := newMemStorage()
	svc := newService(st, nil)
	st.objects["team/1-a.png"] = pngBytes(t, 1600, 800)

	require.NoError(t, svc.ProcessVariants(context.Background(), "team/1-a.png"))

	for name := range storage.VariantSizes {
		key := VariantKey("team/1-a.png", name)
		assert.Contains(t, st.objects, key)
		assert.Equal(t, "image/jpeg", st.types[key])
	}
	assert.Equal(t, "team/1-a_thumbnail.jpg", VariantKey("team/1-a.png", "thumbnail"))
}

func TestProcessVariants_MissingOriginal(t *testing.T) {
	svc := newService(newMemStorage(), nil)
	assert.Error(t, svc.ProcessVariants(context.Background(), "nope.png"))
}

func TestUpload_NonLatinFilenameKeepsExtension(t *testing.T) {
	svc := newService(newMemStorage(), nil)

	res, err := svc.Upload(context.Background(), &upload.File{
		Filename: "图片.png", ContentType: "image/png", Data: pngBytes(t, 2, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/1700000000000-file.png", res.Key)
	assert.Equal(t, "uploads/1700000000000-file_thumbnail.jpg", VariantKey(res.Key, "thumbnail"))
}
