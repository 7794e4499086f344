package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crewhq/crewhq/internal/database"
	"github.com/crewhq/crewhq/internal/model"
	"github.com/crewhq/crewhq/internal/upload"
)

type fakeUploader struct {
	fail bool
}

func (f *fakeUploader) Upload(_ context.Context, req *upload.Request) (string, error) {
	if f.fail {
		return "", errors.New("upload down")
	}

	return "https://files.local/" + req.Folder + "/" + req.Name, nil
}

func prepare(t *testing.T) (*Engine, *database.DatabaseManager) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	dbm := database.New(db)
	require.NoError(t, dbm.Migrate())

	return NewEngine(dbm, &fakeUploader{}), dbm
}

func addBrawler(t *testing.T, dbm *database.DatabaseManager, username string) *model.Brawler {
	t.Helper()

	b := &model.Brawler{Username: username, Password: "x", DisplayName: username}
	require.NoError(t, dbm.Create(b))

	return b
}

func addMission(t *testing.T, e *Engine, chiefID uint, name string, maxMembers int) *model.Mission {
	t.Helper()

	m, err := e.CreateMission(chiefID, &AddMission{Name: name, MaxMembers: maxMembers})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)

	return m
}
