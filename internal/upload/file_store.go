package upload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore keeps uploads on local disk under baseDir and serves them
// under baseURL.
type FileStore struct {
	logger  *slog.Logger
	baseDir string
	baseURL string
}

func NewFileStore(baseDir, baseURL string) *FileStore {
	return &FileStore{
		logger:  slog.With("logger", "filestore"),
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (f *FileStore) Start() error {
	return os.MkdirAll(f.baseDir, 0777)
}

func (f *FileStore) BaseDir() string {
	return f.baseDir
}

func (f *FileStore) Upload(ctx context.Context, req *Request) (string, error) {
	if req == nil || len(req.Data) == 0 {
		return "", fmt.Errorf("empty upload")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	folder := req.Folder
	if folder == "" {
		folder = "misc"
	}

	name := uuid.NewString() + filepath.Ext(req.Name)
	dir := filepath.Join(f.baseDir, folder)

	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(dir, name), req.Data, 0666); err != nil {
		return "", err
	}

	url := f.baseURL + "/" + folder + "/" + name

	f.logger.Debug("stored " + url)

	return url, nil
}
