package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/domains/upload"
	"orgsite-backend/internal/infrastructure/queue"
	"orgsite-backend/internal/shared"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/internal/shared/utils"
)

// Types image.Decode can read; variants are generated only for these.
var processable = map[string]bool{"image/jpeg": true, "image/png": true, "image/gif": true}

type Config struct {
	MaxBytes      int64
	DefaultFolder string
}

type uploadService struct {
	storage   upload.Storage
	processor upload.Processor
	queue     queue.Enqueuer
	cfg       Config
	now       func() time.Time
}

func NewUploadService(storage upload.Storage, processor upload.Processor, q queue.Enqueuer, cfg Config) upload.Service {
	if cfg.DefaultFolder == "" {
		cfg.DefaultFolder = "uploads"
	}
	return &uploadService{storage: storage, processor: processor, queue: q, cfg: cfg, now: time.Now}
}

func (s *uploadService) MaxBytes() int64 {
	return s.cfg.MaxBytes
}

func isImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

func (s *uploadService) Upload(ctx context.Context, file *upload.File) (*upload.Result, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, upload.ErrFileRequired
	}
	if s.cfg.MaxBytes > 0 && int64(len(file.Data)) > s.cfg.MaxBytes {
		return nil, upload.ErrFileTooLarge
	}

	// Both the declared and the sniffed type must be images.
	if !isImage(file.ContentType) {
		return nil, upload.ErrNotAnImage
	}
	detected := mimetype.Detect(file.Data)
	if !isImage(detected.String()) {
		log.Warn().
			Str("declared", file.ContentType).
			Str("detected", detected.String()).
			Msg("upload rejected: content is not an image")
		return nil, upload.ErrNotAnImage
	}

	key := s.objectKey(file.Folder, file.Filename)
	url, err := s.storage.Upload(ctx, key, file.Data, detected.String())
	if err != nil {
		return nil, apperror.Internal("Failed to store file", err)
	}

	if processable[detected.String()] {
		s.enqueueVariants(ctx, key)
	}
	return &upload.Result{URL: url, Key: key}, nil
}

// objectKey builds <folder>/<unixMillis>-<sanitized filename>.
func (s *uploadService) objectKey(folder, filename string) string {
	return fmt.Sprintf("%s/%d-%s",
		utils.SanitizeFolder(folder, s.cfg.DefaultFolder),
		s.now().UnixMilli(),
		utils.SanitizeFilename(filename),
	)
}

func (s *uploadService) enqueueVariants(ctx context.Context, key string) {
	if s.queue == nil {
		return
	}
	err := s.queue.Enqueue(ctx, shared.TypeProcessUploadImage, shared.ProcessUploadImagePayload{ObjectKey: key})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to enqueue image processing")
	}
}

// VariantKey places a variant next to its original:
// "team/1700-a.png" + "thumbnail" → "team/1700-a_thumbnail.jpg".
func VariantKey(key, variant string) string {
	stem := strings.TrimSuffix(key, path.Ext(key))
	return stem + "_" + variant + ".jpg"
}

func (s *uploadService) ProcessVariants(ctx context.Context, key string) error {
	original, err := s.storage.Download(ctx, key)
	if err != nil {
		return fmt.Errorf("download original: %w", err)
	}

	variants, err := s.processor.ProcessImage(original)
	if err != nil {
		return fmt.Errorf("process image: %w", err)
	}

	for name, data := range variants {
		if _, err := s.storage.Upload(ctx, VariantKey(key, name), data, "image/jpeg"); err != nil {
			return fmt.Errorf("upload %s variant: %w", name, err)
		}
	}

	log.Info().Str("key", key).Int("variants", len(variants)).Msg("image variants stored")
	return nil
}
