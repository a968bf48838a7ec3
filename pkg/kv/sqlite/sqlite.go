// Package sqlite implements kv.Store as a single table in an SQLite database
// accessed through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/envelope-zero/expenses/pkg/kv"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	_ kv.Store   = (*Store)(nil)
	_ kv.Batcher = (*Store)(nil)
)

// Entry is one key-value pair. The key is stored in the "name" column.
type Entry struct {
	Key   string `gorm:"column:name;primaryKey"`
	Value []byte `gorm:"column:value"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

type Store struct {
	mu     sync.RWMutex
	db     *gorm.DB
	closed bool
}

// Open opens the SQLite database at path and migrates the schema.
// Use ":memory:" for a database that only lives as long as the store.
func Open(path string) (*Store, error) {
	config := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger.With().Str("store", "sqlite").Logger(),
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=busy_timeout(5000)", path)), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and keeps
	// in-memory databases alive for the lifetime of the store.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&Entry{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, kv.ErrClosed
	}

	var e Entry
	err := s.db.WithContext(ctx).Take(&e, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, translate(err)
	}

	return e.Value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return kv.ErrClosed
	}

	return translate(put(s.db.WithContext(ctx), key, value))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return kv.ErrClosed
	}

	return translate(s.db.WithContext(ctx).Delete(&Entry{}, "name = ?", key).Error)
}

func (s *Store) List(ctx context.Context, prefix string) ([]kv.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, kv.ErrClosed
	}

	// Range scan instead of LIKE since LIKE is case insensitive in SQLite
	q := s.db.WithContext(ctx).Where("name >= ?", prefix).Order("name ASC")
	if end := upperBound(prefix); end != "" {
		q = q.Where("name < ?", end)
	}

	var rows []Entry
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	entries := make([]kv.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, kv.Entry{Key: r.Key, Value: r.Value})
	}
	return entries, nil
}

func (s *Store) Batch(ctx context.Context, ops []kv.Op) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return kv.ErrClosed
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			var err error
			switch op.Type {
			case kv.OpPut:
				err = put(tx, op.Key, op.Value)
			case kv.OpDelete:
				err = tx.Delete(&Entry{}, "name = ?", op.Key).Error
			default:
				err = fmt.Errorf("unsupported batch operation %s", op.Type)
			}

			if err != nil {
				return err
			}
		}
		return nil
	})

	return translate(err)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return kv.ErrClosed
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	s.closed = true
	return sqlDB.Close()
}

func put(db *gorm.DB, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

// translate replaces driver errors we cannot give the caller more
// information about with kv.ErrUnavailable. The original error is logged.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) || err.Error() == "sql: database is closed" {
		log.Error().Str("store", "sqlite").Msgf("%T: %v", err, err.Error())
		return fmt.Errorf("%w: %v", kv.ErrUnavailable, err)
	}

	return err
}

func upperBound(prefix string) string {
	end := []byte(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return string(end[:i+1])
		}
	}
	return ""
}
