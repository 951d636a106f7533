package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/pkg/logger"
)

// FileStore is the object-storage port: store bytes, get back a public URL.
// Implemented by infrastructure/storage.S3Store.
type FileStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// UploadFile one incoming file of a batch.
type UploadFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// UploadUseCase stores image batches. One failed file never aborts the
// batch; the response reports how many succeeded.
type UploadUseCase struct {
	store FileStore
	log   *logger.Logger
}

// NewUploadUseCase builds the use case.
func NewUploadUseCase(store FileStore, log *logger.Logger) *UploadUseCase {
	return &UploadUseCase{store: store, log: log}
}

// Upload stores each file under a date-partitioned random key and collects
// per-file results.
func (uc *UploadUseCase) Upload(ctx context.Context, files []UploadFile) *dto.UploadResponse {
	resp := &dto.UploadResponse{Files: make([]dto.UploadedFile, 0, len(files))}
	for _, f := range files {
		result := dto.UploadedFile{Name: f.Name}
		if f.Body == nil {
			result.Err = "unreadable file"
			resp.Failed++
			resp.Files = append(resp.Files, result)
			continue
		}
		url, err := uc.store.Put(ctx, objectKey(f.Name), contentTypeOrDefault(f.ContentType), f.Body)
		if err != nil {
			uc.log.Error().Err(err).Str("file", f.Name).Msg("upload failed")
			result.Err = "upload failed"
			resp.Failed++
		} else {
			result.URL = url
			resp.Succeeded++
		}
		resp.Files = append(resp.Files, result)
	}
	return resp
}

func objectKey(name string) string {
	ext := strings.ToLower(path.Ext(name))
	return fmt.Sprintf("uploads/%s/%s%s", time.Now().UTC().Format("2006/01/02"), uuid.New().String(), ext)
}

func contentTypeOrDefault(ct string) string {
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}
