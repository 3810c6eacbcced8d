package gdacs

import (
	"fmt"
	"strconv"
	"time"
)

// EventType is a GDACS two-letter hazard code. The zero value means
// "unspecified" and is a valid member of every allow-list that accepts it.
type EventType string

const (
	EventTypeUnset           EventType = ""
	EventTypeTropicalCyclone EventType = "TC"
	EventTypeEarthquake      EventType = "EQ"
	EventTypeFlood           EventType = "FL"
	EventTypeVolcano         EventType = "VO"
	EventTypeDrought         EventType = "DR"
	EventTypeWildfire        EventType = "WF"
)

// AlertLevel is the GDACS traffic-light impact scale.
type AlertLevel string

const (
	AlertLevelUnset  AlertLevel = ""
	AlertLevelGreen  AlertLevel = "green"
	AlertLevelOrange AlertLevel = "orange"
	AlertLevelRed    AlertLevel = "red"
)

// DataFormat selects the source document format for single-event retrieval.
type DataFormat string

const (
	FormatUnset     DataFormat = ""
	FormatXML       DataFormat = "xml"
	FormatGeoJSON   DataFormat = "geojson"
	FormatShapefile DataFormat = "shp"
)

func (t EventType) valid() bool {
	switch t {
	case EventTypeUnset, EventTypeTropicalCyclone, EventTypeEarthquake,
		EventTypeFlood, EventTypeVolcano, EventTypeDrought, EventTypeWildfire:
		return true
	}
	return false
}

func (l AlertLevel) valid() bool {
	switch l {
	case AlertLevelUnset, AlertLevelGreen, AlertLevelOrange, AlertLevelRed:
		return true
	}
	return false
}

func (f DataFormat) valid() bool {
	switch f {
	case FormatUnset, FormatXML, FormatGeoJSON, FormatShapefile:
		return true
	}
	return false
}

func validateEventType(op string, t EventType) error {
	if !t.valid() {
		return fmt.Errorf("%s: %w: event type %q", op, ErrInvalidParameter, string(t))
	}
	return nil
}

func validateAlertLevel(op string, l AlertLevel) error {
	if !l.valid() {
		return fmt.Errorf("%s: %w: alert level %q", op, ErrInvalidParameter, string(l))
	}
	return nil
}

func validateDataFormat(op string, f DataFormat) error {
	if !f.valid() {
		return fmt.Errorf("%s: %w: data format %q", op, ErrInvalidParameter, string(f))
	}
	return nil
}

// EventFilter narrows a LatestEvents query. The zero value requests the
// first page of everything.
type EventFilter struct {
	// EventTypes restricts results to the given hazard codes. Each entry is
	// validated against the event-type allow-list.
	EventTypes []EventType

	// AlertLevel restricts results to one alert level.
	AlertLevel AlertLevel

	// DateModified restricts results to events modified since the given
	// instant. The zero time is omitted from the request.
	DateModified time.Time

	// Country restricts results to one country, by name.
	Country string

	// Severity restricts results to events at or above a numeric severity.
	// Zero is omitted from the request.
	Severity int

	// PageSize is the number of records per page. Zero means the API default
	// of 100.
	PageSize int

	// PageNumber is the 1-based page to fetch. Zero means page 1.
	PageNumber int
}

// normalize applies the documented defaults so that equal queries produce
// equal cache keys regardless of how the caller spelled them.
func (f EventFilter) normalize() EventFilter {
	if f.PageSize == 0 {
		f.PageSize = 100
	}
	if f.PageNumber == 0 {
		f.PageNumber = 1
	}
	return f
}

func (f EventFilter) validate(op string) error {
	for _, t := range f.EventTypes {
		if err := validateEventType(op, t); err != nil {
			return err
		}
	}
	return validateAlertLevel(op, f.AlertLevel)
}

// queryParams renders the filter as the latest-events query string, omitting
// unset optionals.
func (f EventFilter) queryParams() map[string]string {
	params := map[string]string{
		"pagesize":   strconv.Itoa(f.PageSize),
		"pagenumber": strconv.Itoa(f.PageNumber),
	}
	if len(f.EventTypes) > 0 {
		list := ""
		for i, t := range f.EventTypes {
			if i > 0 {
				list += ","
			}
			list += string(t)
		}
		params["eventlist"] = list
	}
	if f.AlertLevel != AlertLevelUnset {
		params["alertlevel"] = string(f.AlertLevel)
	}
	if !f.DateModified.IsZero() {
		params["datemodified"] = f.DateModified.UTC().Format(time.RFC3339)
	}
	if f.Country != "" {
		params["country"] = f.Country
	}
	if f.Severity != 0 {
		params["severity"] = strconv.Itoa(f.Severity)
	}
	return params
}
