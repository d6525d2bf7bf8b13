package ports

import "context"

// FileUpload carries an uploaded file through the service layer.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// MediaUploader stores a file on the external media host and returns its
// public URL. Failures are raw errors; services translate them into
// upstream-dependency failures.
type MediaUploader interface {
	Upload(ctx context.Context, file FileUpload, folder string) (string, error)
}
