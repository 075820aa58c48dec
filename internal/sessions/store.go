// SPDX-License-Identifier: MIT

// Package sessions persists the theme namespace of browser sessions.
package sessions

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/thatcatcamp/themekit/internal/models"
	"github.com/thatcatcamp/themekit/internal/state"
)

// CookieName carries the session id
const CookieName = "themekit_session"

var ErrNotFound = errors.New("session not found")

// Store keeps session data in the database
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// NewID returns a fresh random session id
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id issued by NewID
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Load returns the stored data for id, or ErrNotFound
func (s *Store) Load(id string) (state.SessionData, error) {
	var row models.ThemeSession
	err := s.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return state.SessionData{}, ErrNotFound
	}
	if err != nil {
		return state.SessionData{}, fmt.Errorf("failed to load session: %w", err)
	}
	return state.SessionData{Theme: row.Theme, Preset: row.Preset, Mode: row.Mode, Pack: row.Pack}, nil
}

// Save creates or replaces the data for id
func (s *Store) Save(id string, data state.SessionData) error {
	row := models.ThemeSession{
		ID:     id,
		Theme:  data.Theme,
		Preset: data.Preset,
		Mode:   data.Mode,
		Pack:   data.Pack,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme", "preset", "mode", "pack", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *Store) Delete(id string) error {
	if err := s.db.Delete(&models.ThemeSession{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Purge deletes sessions not updated since before and returns how many went
func (s *Store) Purge(before time.Time) (int64, error) {
	res := s.db.Where("updated_at < ?", before).Delete(&models.ThemeSession{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
