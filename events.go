package gdacs

import (
	"context"

	"github.com/couchcryptid/gdacs-go/internal/cache"
)

const (
	opLatestEvents     = "latest_events"
	opLatestEvents4App = "latest_events_4app"
)

// LatestEvents4App fetches the current event list from the EVENTS4APP feed.
// The endpoint takes no query parameters; eventType and limit are applied
// client-side after the fetch. eventType narrows results to one hazard code
// (EventTypeUnset keeps all), limit caps the number of returned features
// (<= 0 means no cap).
func (c *Client) LatestEvents4App(ctx context.Context, eventType EventType, limit int) (*FeatureCollection, error) {
	if err := validateEventType(opLatestEvents4App, eventType); err != nil {
		return nil, err
	}

	key := cache.Key(opLatestEvents4App, eventType, limit)
	if fc, ok := cacheLookup(c, c.latest4AppCache, opLatestEvents4App, key); ok {
		return fc, nil
	}

	fc, err := c.fetchCollection(ctx, opLatestEvents4App, latestEvents4AppPath, nil, false)
	if err != nil {
		return nil, err
	}

	filtered := make([]Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if eventType != EventTypeUnset && f.EventType() != string(eventType) {
			continue
		}
		filtered = append(filtered, f)
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	result := &FeatureCollection{Type: fc.Type, Features: filtered}
	c.latest4AppCache.Put(key, result)
	return result, nil
}

// LatestEvents fetches the latest events matching the filter from the main
// event-list endpoint. An HTTP 204 from the API yields an empty collection,
// not an error. Pagination is the caller's job: request further pages via
// EventFilter.PageNumber.
func (c *Client) LatestEvents(ctx context.Context, filter EventFilter) (*FeatureCollection, error) {
	if err := filter.validate(opLatestEvents); err != nil {
		return nil, err
	}
	filter = filter.normalize()

	key := cache.Key(opLatestEvents,
		filter.EventTypes, filter.AlertLevel, filter.DateModified.UTC(),
		filter.Country, filter.Severity, filter.PageSize, filter.PageNumber)
	if fc, ok := cacheLookup(c, c.latestCache, opLatestEvents, key); ok {
		return fc, nil
	}

	fc, err := c.fetchCollection(ctx, opLatestEvents, latestEventsPath, filter.queryParams(), false)
	if err != nil {
		return nil, err
	}

	c.latestCache.Put(key, fc)
	return fc, nil
}
