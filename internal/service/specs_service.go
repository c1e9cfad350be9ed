package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"showcase-backend/internal/models"
	"showcase-backend/pkg/cache"
	"showcase-backend/pkg/logger"
)

const specsFetchTimeout = 5 * time.Second

// DefaultSpecEntries is the bundled dataset served whenever the remote specs
// endpoint is unreachable or returns something unusable.
var DefaultSpecEntries = []models.SpecEntry{
	{LeftLabel: "Screen Size", LeftValue: `55"`, RightLabel: "Resolution", RightValue: "3840 x 2160"},
	{LeftLabel: "Display Type", LeftValue: "OLED", RightLabel: "Refresh Rate", RightValue: "120Hz"},
	{LeftLabel: "HDR", LeftValue: "Dolby Vision", RightLabel: "Audio", RightValue: "40W 2.2ch"},
	{LeftLabel: "Smart Platform", LeftValue: "webOS", RightLabel: "Voice Control", RightValue: "Yes"},
	{LeftLabel: "HDMI Ports", LeftValue: "4", RightLabel: "USB Ports", RightValue: "3"},
	{LeftLabel: "Dimensions", LeftValue: "1225 x 740 x 45mm", RightLabel: "Weight", RightValue: "18.9kg"},
}

// SpecService fetches the specification dataset for spec-table blocks,
// degrading to the bundled defaults on any failure. Callers never see an
// error and never see an empty dataset.
type SpecService struct {
	url    string
	client *http.Client
	cache  *cache.Cache
}

func NewSpecService(url string, c *cache.Cache) *SpecService {
	return &SpecService{
		url:    url,
		client: &http.Client{Timeout: specsFetchTimeout},
		cache:  c,
	}
}

// Entries returns the spec dataset. Fetch failures of every kind degrade to
// DefaultSpecEntries; they are logged, never surfaced.
func (s *SpecService) Entries(ctx context.Context) []models.SpecEntry {
	if s == nil || s.url == "" {
		return DefaultSpecEntries
	}

	if s.cache != nil {
		var cached []models.SpecEntry
		if err := s.cache.GetCachedDataset("specs", &cached); err == nil && len(cached) > 0 {
			return cached
		}
	}

	entries, err := s.fetch(ctx)
	if err != nil {
		logger.Warn("Specs fetch failed, serving bundled dataset", map[string]interface{}{
			"url":   s.url,
			"error": err.Error(),
		})
		return DefaultSpecEntries
	}

	if s.cache != nil {
		if err := s.cache.CacheDataset("specs", entries); err != nil {
			logger.Debug("Failed to cache specs dataset", map[string]interface{}{"error": err.Error()})
		}
	}
	return entries
}

func (s *SpecService) fetch(ctx context.Context) ([]models.SpecEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building specs request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching specs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("specs endpoint returned status %d", resp.StatusCode)
	}

	var entries []models.SpecEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding specs payload: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("specs payload is empty")
	}
	return entries, nil
}
