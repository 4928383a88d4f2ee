package upload

import "context"

// File is an uploaded file read into memory.
type File struct {
	Filename    string
	ContentType string // declared by the client
	Folder      string
	Data        []byte
}

// Result is the upload response. Key addresses the stored object and its
// generated variants.
type Result struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Storage is the blob store; *storage.MinIOStorage satisfies it.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
}

// Processor renders resized variants of an image.
type Processor interface {
	ProcessImage(data []byte) (map[string][]byte, error)
}
