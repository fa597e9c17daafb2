// Package database manages the embedded sqlite store that backs offline
// downloads. The connection is an explicit object with its own lifecycle,
// constructed once per process and injected into repositories.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"luma/internal/infrastructure/persistence/models"
	"luma/internal/shared/config"
	"luma/internal/shared/errors"
	appLogger "luma/internal/shared/logger"
)

type state int

const (
	stateUninitialized state = iota
	stateOpening
	stateReady
	stateFailed
)

// Store owns the embedded database handle and its connection state machine:
// Uninitialized -> Opening -> Ready, with Failed terminal. Every consumer
// goes through Ready(), which lazily opens the store on first use; once
// opening has failed, all later calls fail fast with the same
// StorageUnavailable error instead of retrying.
type Store struct {
	mu      sync.Mutex
	state   state
	db      *gorm.DB
	initErr error
	cfg     *config.DatabaseConfig
}

func NewStore(cfg *config.DatabaseConfig) *Store {
	return &Store{cfg: cfg}
}

// Ready returns the open database handle, opening the store on first call.
// Opening holds the lock, so concurrent first callers cannot race to create
// the schema twice.
func (s *Store) Ready() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateReady:
		return s.db, nil
	case stateFailed:
		return nil, errors.NewStorageUnavailableError("download storage unavailable", s.initErr.Error())
	case stateOpening:
		// Opening happens under the lock, so this state is never observed
		// by another caller. Treat it as a bug if it ever is.
		return nil, errors.NewInternalError("download storage is opening")
	}

	s.state = stateOpening
	db, err := s.open()
	if err != nil {
		s.state = stateFailed
		s.initErr = err
		appLogger.Error("failed to open download storage", "error", err, "path", s.cfg.Path)
		return nil, errors.NewStorageUnavailableError("download storage unavailable", err.Error())
	}

	s.state = stateReady
	s.db = db
	return s.db, nil
}

// Init opens the store eagerly. Safe to call more than once.
func (s *Store) Init() error {
	_, err := s.Ready()
	return err
}

// Close closes the connection and returns the store to its uninitialized
// state so a later call can reopen it.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		s.state = stateUninitialized
		s.initErr = nil
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close download storage: %w", err)
	}

	s.state = stateUninitialized
	s.db = nil
	appLogger.Info("download storage closed")
	return nil
}

func (s *Store) open() (*gorm.DB, error) {
	if dir := filepath.Dir(s.cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(s.cfg.Path), &gorm.Config{
		Logger: gormlogger.New(
			&slogWriter{},
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// sqlite allows a single writer; serialize access through one
	// connection instead of surfacing SQLITE_BUSY to callers.
	maxOpen := s.cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(s.cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(s.cfg.ConnMaxLifetime) * time.Minute)

	// Create the record collection if absent.
	if err := db.AutoMigrate(&models.DownloadModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate download schema: %w", err)
	}

	appLogger.Info("download storage opened", "path", s.cfg.Path)
	return db, nil
}

// slogWriter routes gorm log output to the application logger.
type slogWriter struct{}

func (w *slogWriter) Printf(format string, args ...interface{}) {
	appLogger.Warn("database", "details", fmt.Sprintf(format, args...))
}
