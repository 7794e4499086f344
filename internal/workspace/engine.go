package workspace

import (
	"log/slog"

	"github.com/crewhq/crewhq/internal/database"
	"github.com/crewhq/crewhq/internal/upload"
)

// Engine is the mission workspace coordination core. It owns all
// mission / crew / task / submission transitions and consults the
// policy in policy.go before every mutation. Authorization and state
// checks come first, cascades after the primary write are best-effort
// and only logged.
type Engine struct {
	dbm      *database.DatabaseManager
	uploader upload.Uploader
	logger   *slog.Logger
}

func NewEngine(dbm *database.DatabaseManager, uploader upload.Uploader) *Engine {
	return &Engine{
		dbm:      dbm,
		uploader: uploader,
		logger:   slog.With("logger", "workspace"),
	}
}
