package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/themekit/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// concurrent session upserts need WAL and a busy timeout on sqlite
const sqlitePragmas = "_journal_mode=WAL&_busy_timeout=5000"

// InitDB opens the session database and migrates it
func InitDB(dbType, dbPath string) error {
	var dialector gorm.Dialector
	maxOpen := 25

	switch dbType {
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(dbPath))
		maxOpen = 1
	case "mysql", "mariadb":
		dialector = mysql.Open(dbPath) // dbPath is DSN for MySQL
	default:
		return fmt.Errorf("unsupported database type: %s", dbType)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)

	if err := Migrate(conn); err != nil {
		return err
	}

	DB = conn
	return nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" || strings.Contains(path, "_journal_mode=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqlitePragmas
}

// Migrate creates or updates the tables themekit owns
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&models.ThemeSession{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks the current connection. Used by the health endpoint.
func Ping() error {
	if DB == nil {
		return errors.New("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database connection (used for testing)
func SetDB(database *gorm.DB) {
	DB = database
}
