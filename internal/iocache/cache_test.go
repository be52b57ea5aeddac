package iocache

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/schema"
)

func TestInitStores(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "cache.db")
		runPath := filepath.Join(dir, "runs.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, runPath)
		assert.NoError(t, err, "Failed to initialize stores")

		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetRecordStore(), "Record store should not be nil")
		assert.NotNil(t, Manager.GetRunStore(), "Run store should not be nil")

		CloseStores()

		// Verify database files were created
		_, err = os.Stat(cachePath)
		assert.False(t, os.IsNotExist(err), "Cache database file should be created")
		_, err = os.Stat(runPath)
		assert.False(t, os.IsNotExist(err), "Run database file should be created")
	})

	t.Run("idempotent setup", func(t *testing.T) {
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitStores(schema.SQLiteBackend, cachePath, "", "")
		err2 := InitStores(schema.SQLiteBackend, cachePath, "", "")
		err3 := InitStores(schema.SQLiteBackend, cachePath, "", "")

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")
		assert.NoError(t, err3, "Third init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseStores()
		CloseStores()
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.NoneBackend, "", schema.NoneBackend, "")
		assert.NoError(t, err, "Failed to initialize stores with none backend")

		store := Manager.GetRecordStore()
		assert.NotNil(t, store, "Record store should not be nil")

		CloseStores()
	})
}

func TestCacheStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(recordTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Missing key surfaces sql.ErrNoRows
	_, _, _, err = store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	payload := []byte(`{"player_id":"p1","window":"7d"}`)
	require.NoError(t, store.Set("p1:7d", payload, 1, 1700000000))

	value, version, ts, err := store.Get("p1:7d")
	require.NoError(t, err)
	assert.Equal(t, payload, value)
	assert.Equal(t, 1, version)
	assert.Equal(t, int64(1700000000), ts)

	// Overwriting replaces the previous payload
	updated := []byte(`{"player_id":"p1","window":"7d","games_played":5}`)
	require.NoError(t, store.Set("p1:7d", updated, 2, 1700003600))

	value, version, ts, err = store.Get("p1:7d")
	require.NoError(t, err)
	assert.Equal(t, updated, value)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(1700003600), ts)
}

func TestCacheStoreStatus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(recordTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalEntries)

	require.NoError(t, store.Set("k1", []byte("v1"), 1, 1700000000))
	require.NoError(t, store.Set("k2", []byte("v2"), 1, 1700007200))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, int64(1700007200), status.LastEntryTime.Unix())
	assert.Equal(t, int64(1700000000), status.OldestEntryTime.Unix())
}

func TestCacheStoreClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(recordTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("k1", []byte("v1"), 1, 1700000000))
	require.NoError(t, store.Clear())

	_, _, _, err = store.Get("k1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalEntries)
}

func TestCacheStoreNoneBackend(t *testing.T) {
	store, err := NewCacheStore(recordTable, schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Writes are no-ops, reads always miss
	assert.NoError(t, store.Set("k1", []byte("v1"), 1, 1700000000))
	_, _, _, err = store.Get("k1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestCacheStoreInvalidTableName(t *testing.T) {
	_, err := NewCacheStore("drop table; --", schema.SQLiteBackend, filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)

	_, err = NewCacheStore("", schema.SQLiteBackend, filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("frontoffice_record_cache"))
	assert.NoError(t, validateTableName("_private"))
	assert.Error(t, validateTableName("9starts_with_digit"))
	assert.Error(t, validateTableName("has-dash"))
	assert.Error(t, validateTableName(""))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"t"`, quoteTableName("t", schema.SQLiteBackend))
	assert.Equal(t, "`t`", quoteTableName("t", schema.MySQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.PostgreSQLBackend))
}
