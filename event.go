package gdacs

import (
	"context"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/couchcryptid/gdacs-go/internal/cache"
)

const opGetEvent = "get_event"

// EventRequest identifies a single event resource for GetEvent.
type EventRequest struct {
	// EventType is the hazard code segment of the resource path.
	EventType EventType

	// EventID is the event's external identifier.
	EventID string

	// EpisodeID optionally selects one episode of the event.
	EpisodeID string

	// SourceFormat picks the document format. FormatUnset means XML.
	SourceFormat DataFormat

	// CAPFile selects the CAP alert variant of the XML format instead of the
	// episode RSS feed.
	CAPFile bool
}

// EventRecord is the result of GetEvent: the format tag plus exactly one
// populated payload field matching it.
type EventRecord struct {
	// Format is the resolved document format (never FormatUnset).
	Format DataFormat

	// Collection holds the parsed document for FormatGeoJSON.
	Collection *geojson.FeatureCollection

	// Alert holds the CAP alert for FormatXML requests with CAPFile set.
	Alert *CAPAlert

	// Feed holds the episode RSS feed for other FormatXML requests.
	Feed *RSSFeed

	// Confirmation names the extracted archive for FormatShapefile.
	Confirmation string
}

// GetEvent retrieves the record of a single event as a static resource
// document, dispatching on the requested format:
//
//   - FormatGeoJSON fetches and parses geojson_{id}_{episode}.geojson.
//   - FormatShapefile downloads and extracts Shape_{id}_{episode}.zip into
//     the configured download directory.
//   - FormatXML (the default) fetches cap_{id}.xml when CAPFile is set,
//     otherwise rss_{id}.xml or rss_{id}_{episode}.xml.
//
// A missing remote resource fails with ErrAPIUnavailable.
func (c *Client) GetEvent(ctx context.Context, req EventRequest) (*EventRecord, error) {
	if err := validateEventType(opGetEvent, req.EventType); err != nil {
		return nil, err
	}
	if err := validateDataFormat(opGetEvent, req.SourceFormat); err != nil {
		return nil, err
	}

	key := cache.Key(opGetEvent, req.EventType, req.EventID, req.EpisodeID, req.SourceFormat, req.CAPFile)
	if rec, ok := cacheLookup(c, c.eventCache, opGetEvent, key); ok {
		return rec, nil
	}

	var (
		rec *EventRecord
		err error
	)
	switch req.SourceFormat {
	case FormatGeoJSON:
		rec, err = c.geoJSONEvent(ctx, req)
	case FormatShapefile:
		rec, err = c.shapefileEvent(ctx, req)
	default:
		rec, err = c.xmlEvent(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	c.eventCache.Put(key, rec)
	return rec, nil
}

func (c *Client) geoJSONEvent(ctx context.Context, req EventRequest) (*EventRecord, error) {
	name := fmt.Sprintf("geojson_%s_%s.geojson", req.EventID, req.EpisodeID)
	body, err := c.fetchResource(ctx, req.EventType, req.EventID, name)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: parse %s: %v", opGetEvent, ErrAPIUnavailable, name, err)
	}
	return &EventRecord{Format: FormatGeoJSON, Collection: fc}, nil
}

func (c *Client) shapefileEvent(ctx context.Context, req EventRequest) (*EventRecord, error) {
	name := fmt.Sprintf("Shape_%s_%s.zip", req.EventID, req.EpisodeID)
	body, err := c.fetchResource(ctx, req.EventType, req.EventID, name)
	if err != nil {
		return nil, err
	}

	if err := c.extractShapefile(name, body); err != nil {
		return nil, err
	}
	return &EventRecord{
		Format:       FormatShapefile,
		Confirmation: fmt.Sprintf("Downloaded %s in directory.", name),
	}, nil
}

func (c *Client) xmlEvent(ctx context.Context, req EventRequest) (*EventRecord, error) {
	var name string
	switch {
	case req.CAPFile:
		name = fmt.Sprintf("cap_%s.xml", req.EventID)
	case req.EpisodeID == "":
		name = fmt.Sprintf("rss_%s.xml", req.EventID)
	default:
		name = fmt.Sprintf("rss_%s_%s.xml", req.EventID, req.EpisodeID)
	}

	body, err := c.fetchResource(ctx, req.EventType, req.EventID, name)
	if err != nil {
		return nil, err
	}

	if req.CAPFile {
		alert, err := parseCAPAlert(body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: parse %s: %v", opGetEvent, ErrAPIUnavailable, name, err)
		}
		return &EventRecord{Format: FormatXML, Alert: alert}, nil
	}

	feed, err := parseRSSFeed(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: parse %s: %v", opGetEvent, ErrAPIUnavailable, name, err)
	}
	return &EventRecord{Format: FormatXML, Feed: feed}, nil
}
