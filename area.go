package gdacs

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"

	"github.com/couchcryptid/gdacs-go/internal/cache"
)

const opEventsByArea = "events_by_area"

// EventsByArea fetches events intersecting a geographic area given as a WKT
// geometry string. days restricts results to the last N days; zero or
// negative means the API default window.
//
// The geometry is parsed locally before any request: an empty or
// syntactically invalid WKT string fails with ErrInvalidParameter and zero
// network calls.
func (c *Client) EventsByArea(ctx context.Context, geometryArea string, days int) (*FeatureCollection, error) {
	if strings.TrimSpace(geometryArea) == "" {
		return nil, fmt.Errorf("%s: %w: geometry area is empty", opEventsByArea, ErrInvalidParameter)
	}
	if _, err := wkt.Unmarshal(geometryArea); err != nil {
		return nil, fmt.Errorf("%s: %w: geometry area %q: %v", opEventsByArea, ErrInvalidParameter, geometryArea, err)
	}

	key := cache.Key(opEventsByArea, geometryArea, days)
	if fc, ok := cacheLookup(c, c.byAreaCache, opEventsByArea, key); ok {
		return fc, nil
	}

	params := map[string]string{"geometryArea": geometryArea}
	if days > 0 {
		params["days"] = strconv.Itoa(days)
	}

	fc, err := c.fetchCollection(ctx, opEventsByArea, eventsByAreaPath, params, false)
	if err != nil {
		return nil, err
	}

	c.byAreaCache.Put(key, fc)
	return fc, nil
}
