package iocache

import (
	"fmt"
	"sync"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// recordTable is the name of the table for stat-record caching.
const recordTable = "frontoffice_record_cache"

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetCacheDBFilePath returns the path to the SQLite DB file for record caching.
func GetCacheDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunDBFilePath() string {
	return contract.GetRunDBFilePath()
}

// InitStores initializes the global manager with separate record cache and
// run tracking stores. cacheBackend can be empty to disable record caching.
// runBackend can be empty to disable run tracking.
func InitStores(cacheBackend schema.DatabaseBackend, cacheConnStr string, runBackend schema.DatabaseBackend, runConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		// Initialize the record cache store only if a backend is configured
		var recordStore contract.CacheStore
		if cacheBackend != "" {
			recordStore, err = NewCacheStore(recordTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize record caching: %w", err)
				return
			}
		}

		// Initialize the run store only if a backend is configured
		var runStore contract.RunStore
		if runBackend != "" {
			runStore, err = NewRunStore(runBackend, runConnStr)
			if err != nil {
				if recordStore != nil {
					_ = recordStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize run tracking: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.records = recordStore
		Manager.runs = runStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.records != nil {
			_ = Manager.records.Close()
		}
		if Manager.runs != nil {
			_ = Manager.runs.Close()
		}
	})
}
