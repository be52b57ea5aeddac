package provider

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// currentCacheVersion defines the version of the cached payload schema.
const currentCacheVersion = 1

// statsTimeout bounds a single stats API request.
const statsTimeout = 30 * time.Second

// StatsClient fetches per-player stat records from an HTTP stats API
// and caches raw payloads through the record cache.
type StatsClient struct {
	baseURL string
	client  *resty.Client
	cache   contract.CacheStore // may be nil when caching is disabled
}

var _ contract.StatsProvider = &StatsClient{} // Compile-time check

// NewStatsClient creates a client for the given API base URL. The cache
// store may be nil to disable payload caching.
func NewStatsClient(baseURL string, cache contract.CacheStore) *StatsClient {
	client := resty.New()
	client.SetTimeout(statsTimeout)

	return &StatsClient{
		baseURL: baseURL,
		client:  client,
		cache:   cache,
	}
}

// statsResponse is the wire shape of the per-player stats endpoint.
type statsResponse struct {
	PlayerID string              `json:"player_id"`
	Records  []schema.StatRecord `json:"records"`
}

// PlayerRecords returns the stat records for one player across the
// requested windows. Payloads are served from cache when a fresh entry
// exists for the current hour bucket.
func (sc *StatsClient) PlayerRecords(ctx context.Context, playerID string, windows []schema.Window) ([]schema.StatRecord, error) {
	if playerID == "" {
		return nil, fmt.Errorf("player id cannot be empty")
	}

	records := make([]schema.StatRecord, 0, len(windows))
	for _, window := range windows {
		record, err := sc.windowRecord(ctx, playerID, window)
		if err != nil {
			return nil, err
		}
		if record != nil {
			records = append(records, *record)
		}
	}
	return records, nil
}

// windowRecord fetches one player/window record, checking the cache first.
func (sc *StatsClient) windowRecord(ctx context.Context, playerID string, window schema.Window) (*schema.StatRecord, error) {
	key := sc.cacheKey(playerID, window)

	if cached := sc.checkCacheHit(key); cached != nil {
		return cached, nil
	}

	record, err := sc.fetchWindow(ctx, playerID, window)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	// Store in cache
	if sc.cache != nil {
		if data, err := json.Marshal(record); err == nil {
			_ = sc.cache.Set(key, data, currentCacheVersion, time.Now().Unix())
		}
	}

	return record, nil
}

// checkCacheHit attempts to retrieve and validate a cached record.
func (sc *StatsClient) checkCacheHit(key string) *schema.StatRecord {
	if sc.cache == nil {
		return nil
	}

	data, version, ts, err := sc.cache.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= contract.CacheGranularity {
			var record schema.StatRecord
			if err := json.Unmarshal(data, &record); err == nil {
				return &record // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// fetchWindow performs the HTTP request for one player/window pair.
func (sc *StatsClient) fetchWindow(ctx context.Context, playerID string, window schema.Window) (*schema.StatRecord, error) {
	resp, err := sc.client.R().
		SetContext(ctx).
		SetPathParam("playerID", playerID).
		SetQueryParam("window", string(window)).
		Get(sc.baseURL + "/players/{playerID}/stats")
	if err != nil {
		return nil, fmt.Errorf("stats request for player %s failed: %w", playerID, err)
	}

	if resp.StatusCode() == 404 {
		// Unknown player or no data for the window
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stats API returned %d for player %s window %s", resp.StatusCode(), playerID, window)
	}

	var payload statsResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse stats response for player %s: %w", playerID, err)
	}

	for i := range payload.Records {
		if payload.Records[i].Window == window {
			record := payload.Records[i]
			if record.PlayerID == "" {
				record.PlayerID = playerID
			}
			return &record, nil
		}
	}
	return nil, nil
}

// cacheKey creates a unique key for one player/window fetch, bucketed
// to the cache granularity so repeat scans within an hour reuse payloads.
func (sc *StatsClient) cacheKey(playerID string, window schema.Window) string {
	bucket := time.Now().Truncate(contract.CacheGranularity).Unix()
	key := fmt.Sprintf("%s:%s:%s:%d", sc.baseURL, playerID, window, bucket)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
