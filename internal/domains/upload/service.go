package upload

import "context"

type Service interface {
	Upload(ctx context.Context, file *File) (*Result, error)
	// ProcessVariants stores resized copies of the original at key.
	ProcessVariants(ctx context.Context, key string) error
	MaxBytes() int64
}
