package upload

import (
	"context"
)

// Request carries raw file bytes plus destination hints.
type Request struct {
	Folder      string
	Name        string
	ContentType string
	Data        []byte
}

// Uploader stores a file somewhere durable and returns its URL. This is
// the only long-latency call in the workspace, callers bound it with
// the context.
type Uploader interface {
	Upload(ctx context.Context, req *Request) (string, error)
}
