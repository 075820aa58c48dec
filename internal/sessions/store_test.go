// SPDX-License-Identifier: MIT
package sessions

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thatcatcamp/themekit/internal/db"
	"github.com/thatcatcamp/themekit/internal/models"
	"github.com/thatcatcamp/themekit/internal/state"
)

func setupTestStore(t *testing.T) (*Store, *gorm.DB) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(testDB))
	return NewStore(testDB), testDB
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	assert.True(t, ValidID(a))
	assert.False(t, ValidID("not-a-uuid"))
	assert.False(t, ValidID(""))
}

func TestLoadMissing(t *testing.T) {
	store, _ := setupTestStore(t)
	data, err := store.Load(NewID())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, state.SessionData{}, data)
}

func TestSaveAndLoad(t *testing.T) {
	store, _ := setupTestStore(t)
	id := NewID()

	require.NoError(t, store.Save(id, state.SessionData{Theme: "ios", Preset: "blue", Mode: "dark"}))
	data, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, state.SessionData{Theme: "ios", Preset: "blue", Mode: "dark"}, data)

	// Save is an upsert
	require.NoError(t, store.Save(id, state.SessionData{Theme: "fluent", Pack: "retro"}))
	data, err = store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, state.SessionData{Theme: "fluent", Pack: "retro"}, data)
}

func TestDelete(t *testing.T) {
	store, _ := setupTestStore(t)
	id := NewID()
	require.NoError(t, store.Save(id, state.SessionData{Mode: "light"}))

	require.NoError(t, store.Delete(id))
	_, err := store.Load(id)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, store.Delete(id))
}

func TestPurge(t *testing.T) {
	store, testDB := setupTestStore(t)
	stale, fresh := NewID(), NewID()
	require.NoError(t, store.Save(stale, state.SessionData{Theme: "ios"}))
	require.NoError(t, store.Save(fresh, state.SessionData{Theme: "dense"}))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, testDB.Model(&models.ThemeSession{}).Where("id = ?", stale).UpdateColumn("updated_at", old).Error)

	n, err := store.Purge(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = store.Load(stale)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = store.Load(fresh)
	assert.NoError(t, err)
}
