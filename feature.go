package gdacs

import "encoding/json"

// Feature is one hazard event record from a list endpoint. Property keys and
// geometry shape vary by hazard, so both are kept opaque; typed accessors
// cover the properties every GDACS feature carries.
type Feature struct {
	Type       string          `json:"type,omitempty"`
	BBox       []float64       `json:"bbox,omitempty"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
	Properties map[string]any  `json:"properties"`
}

// EventType returns the feature's hazard code, or "" when absent.
func (f Feature) EventType() string {
	return f.stringProperty("eventtype")
}

// AlertLevel returns the feature's alert level as reported by the API
// (capitalized, e.g. "Red"), or "" when absent.
func (f Feature) AlertLevel() string {
	return f.stringProperty("alertlevel")
}

// EventID returns the feature's numeric event identifier, or 0 when absent.
func (f Feature) EventID() int64 {
	if v, ok := f.Properties["eventid"].(float64); ok {
		return int64(v)
	}
	return 0
}

// Country returns the feature's country property, or "" when absent.
func (f Feature) Country() string {
	return f.stringProperty("country")
}

func (f Feature) stringProperty(name string) string {
	if v, ok := f.Properties[name].(string); ok {
		return v
	}
	return ""
}

// FeatureCollection is the result of a list operation: an ordered set of
// features plus whatever collection-level members the API returned. It must
// not be mutated after return; cached calls share the same value.
type FeatureCollection struct {
	Type     string    `json:"type,omitempty"`
	Features []Feature `json:"features"`
}

// Len returns the number of features in the collection.
func (fc *FeatureCollection) Len() int {
	if fc == nil {
		return 0
	}
	return len(fc.Features)
}
