package models

import (
	"time"
)

// ThemeSession is the persisted theme namespace of one browser session
type ThemeSession struct {
	ID        string `gorm:"primaryKey;size:36"` // uuid
	Theme     string `gorm:"size:64"`
	Preset    string `gorm:"size:64"`
	Mode      string `gorm:"size:16"`
	Pack      string `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
}
