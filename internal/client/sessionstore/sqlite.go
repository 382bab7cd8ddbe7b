package sessionstore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/artfolio/artfolio-cli/internal/client/migrations"
	"github.com/artfolio/artfolio-cli/internal/cryptox"
	"github.com/artfolio/artfolio-cli/internal/dbx"
	"github.com/artfolio/artfolio-cli/internal/filex"
	"github.com/pressly/goose/v3"
)

const (
	keyToken      = "auth_token"
	keyTokenNonce = "auth_token_nonce"

	dbFileName  = "session.db"
	keyFileName = "device.key"
)

// SQLiteStore persists the token in the profile database, sealed under the
// profile's device key. The value survives process restarts for the same
// profile directory; it is not portable across profiles.
type SQLiteStore struct {
	db  *sql.DB
	key []byte
}

// Open prepares the profile directory (database, migrations, device key) and
// returns a ready store. The sqlite driver must be registered by the caller
// (blank import of modernc.org/sqlite).
func Open(ctx context.Context, profileDir string) (*SQLiteStore, error) {
	if profileDir == "" {
		var err error
		profileDir, err = filex.DefaultProfileDir()
		if err != nil {
			return nil, err
		}
	}

	dir, err := filex.EnsureDir(profileDir)
	if err != nil {
		return nil, err
	}

	key, err := cryptox.LoadOrCreateKey(filepath.Join(dir, keyFileName))
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, key: key}, nil
}

// NewSQLiteStore wraps an already-migrated database handle. Used by tests.
func NewSQLiteStore(db *sql.DB, key []byte) *SQLiteStore {
	return &SQLiteStore{db: db, key: key}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Token returns the stored token or "" when none is present. A failure to
// unseal (e.g. replaced device key) is returned as an error; callers are
// expected to degrade to anonymous.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	ciphertext, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return "", err
	}
	if ciphertext == nil {
		return "", nil
	}

	nonce, err := s.get(ctx, s.db, keyTokenNonce)
	if err != nil {
		return "", err
	}

	plaintext, err := cryptox.Open(ciphertext, nonce, s.key)
	if err != nil {
		return "", fmt.Errorf("unseal token: %w", err)
	}
	return string(plaintext), nil
}

// SetToken seals and persists the token, overwriting any prior value.
// Ciphertext and nonce are written in one transaction so a crash cannot leave
// them out of step.
func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	ciphertext, nonce, err := cryptox.Seal([]byte(token), s.key)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, ciphertext); err != nil {
			return err
		}
		return s.set(ctx, tx, keyTokenNonce, nonce)
	})
}

// Clear removes the stored token. Idempotent.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.delete(ctx, tx, keyToken); err != nil {
			return err
		}
		return s.delete(ctx, tx, keyTokenNonce)
	})
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, db dbx.DBTX, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}
