package gdacs

import (
	"context"
	"fmt"
	"strconv"

	"github.com/couchcryptid/gdacs-go/internal/cache"
)

const opEventData = "event_data"

// EventData fetches the feature collection for a single event from the
// event-data endpoint. eventType is required; source optionally names the
// upstream data provider and is passed through unvalidated. A 404 from the
// API fails with ErrEventNotFound, distinct from generic upstream failure.
func (c *Client) EventData(ctx context.Context, eventID int64, eventType EventType, source string) (*FeatureCollection, error) {
	if eventType == EventTypeUnset {
		return nil, fmt.Errorf("%s: %w: event type is required", opEventData, ErrInvalidParameter)
	}
	if err := validateEventType(opEventData, eventType); err != nil {
		return nil, err
	}

	key := cache.Key(opEventData, eventID, eventType, source)
	if fc, ok := cacheLookup(c, c.eventDataCache, opEventData, key); ok {
		return fc, nil
	}

	params := map[string]string{
		"eventid":   strconv.FormatInt(eventID, 10),
		"eventtype": string(eventType),
	}
	if source != "" {
		params["source"] = source
	}

	fc, err := c.fetchCollection(ctx, opEventData, eventDataPath, params, true)
	if err != nil {
		return nil, err
	}

	c.eventDataCache.Put(key, fc)
	return fc, nil
}
