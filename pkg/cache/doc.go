// Package cache provides a small generic key-value cache with an in-memory
// and a Redis backend, plus Memoizer for load-on-miss with request
// collapsing.
//
// The service caches the recipient statistics shown by GET /stats so a burst
// of page loads does not re-read the spreadsheet each time:
//
//	stats := cache.NewMemoizer[campaign.Stats](cache.NewMemory[campaign.Stats](), 30*time.Second)
//	s, err := stats.Get(ctx, "stats", pipeline.Stats)
//
// Campaigns never read through the cache; they always read the sheet fresh.
package cache
