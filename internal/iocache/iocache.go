// Package iocache is for caching I/O calls and tracking analysis runs.
package iocache

import (
	"sync"

	"github.com/hoopsight/frontoffice/internal/contract"
)

// StoreManager manages the record cache and run tracking stores.
type StoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	records      contract.CacheStore
	runs         contract.RunStore
}

var _ contract.CacheManager = &StoreManager{} // Compile-time check

// GetRecordStore returns the stat-record CacheStore.
func (mgr *StoreManager) GetRecordStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.records
}

// GetRunStore returns the run tracking RunStore.
func (mgr *StoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
