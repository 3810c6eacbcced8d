// Package gdacs is a read-only client for the GDACS (Global Disaster Alert
// and Coordination System) web API.
//
// # Data Source
//
// GDACS is a joint initiative of the United Nations and the European
// Commission that publishes near-real-time alerts for natural disasters
// worldwide. The API serves two kinds of resources:
//
//   - List endpoints under /gdacsapi/api/events that return GeoJSON-style
//     feature collections of current hazard events.
//   - Static per-event documents under /datareport/resources: CAP alert XML,
//     RSS episode XML, GeoJSON snapshots, and zipped shapefiles.
//
// # GDACS Conventions
//
// Event types (two-letter codes):
//
//	TC tropical cyclone | EQ earthquake | FL flood
//	VO volcano          | DR drought    | WF wildfire
//
// Alert levels follow a traffic-light scale: green (low impact), orange
// (medium), red (high). Level names are lowercase in requests; the API
// capitalizes them in feature properties ("Red").
//
// Events are subdivided into episodes. Static resource filenames encode both
// identifiers:
//
//	cap_{eventID}.xml                       CAP alert, episode-independent
//	rss_{eventID}.xml                       RSS feed, latest episode
//	rss_{eventID}_{episodeID}.xml           RSS feed, one episode
//	geojson_{eventID}_{episodeID}.geojson   GeoJSON snapshot
//	Shape_{eventID}_{episodeID}.zip         zipped shapefile
//
// Resource paths always join base URL, event type, event ID, and filename
// with forward slashes.
//
// # Validation and Errors
//
// Enum parameters (event type, alert level, data format) are checked against
// fixed allow-lists, and the area query's WKT geometry is parsed, before any
// request is issued. Failures of these checks wrap [ErrInvalidParameter] and
// never touch the network. Transport failures and non-success status codes
// wrap [ErrAPIUnavailable]; a 404 from the event-data endpoint additionally
// wraps [ErrEventNotFound].
//
// # Caching
//
// Every operation is memoized in its own TTL+LRU cache keyed by the full
// argument tuple, bounding outbound call volume for repeated queries. Caches
// are mutex-guarded; a Client is safe for concurrent use.
package gdacs
