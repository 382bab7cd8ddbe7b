package sessionstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/artfolio/artfolio-cli/internal/common"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return NewSQLiteStore(db, common.GenerateRandByteArray(32))
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok, "fresh store must hold no token")

	require.NoError(t, s.SetToken(ctx, "abc123"))

	tok, err = s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc123", tok)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.SetToken(ctx, "first"))
	require.NoError(t, s.SetToken(ctx, "second"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", tok)
}

func TestSQLiteStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.SetToken(ctx, "abc123"))
	require.NoError(t, s.Clear(ctx))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)

	// clearing twice must behave like clearing once
	require.NoError(t, s.Clear(ctx))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestSQLiteStore_SealedAtRest(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.SetToken(ctx, "abc123"))

	var raw []byte
	err := s.db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, keyToken).Scan(&raw)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "abc123", "token must not be stored in plaintext")
}

func TestSQLiteStore_WrongKeyFailsToken(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.SetToken(ctx, "abc123"))

	other := NewSQLiteStore(s.db, common.GenerateRandByteArray(32))
	_, err := other.Token(ctx)
	require.Error(t, err, "a different device key must not unseal the token")
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "profile")

	s, err := Open(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, s.SetToken(ctx, "survives-restart"))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, dir)
	require.NoError(t, err)
	defer s2.Close()

	tok, err := s2.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "survives-restart", tok)
}
